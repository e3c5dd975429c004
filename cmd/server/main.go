package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"jobhub/docs"
	"jobhub/internal/auth"
	"jobhub/internal/cache"
	"jobhub/internal/config"
	"jobhub/internal/db"
	"jobhub/internal/events"
	"jobhub/internal/handler"
	"jobhub/internal/logging"
	"jobhub/internal/repository"
	"jobhub/internal/repository/memory"
	"jobhub/internal/router"
	"jobhub/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title JobHub API
// @version 1.0
// @description Bilingual job listings aggregated from regional job boards, with accounts, saved jobs and notifications.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name jobhub_session
func main() {
	fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			config.Load,
			logging.New,
			newStore,
			newCache,
			newSessionStore,
			newGate,
			newPublisher,
			service.NewAuthService,
			newJobService,
			newSavedJobService,
			newJobSourceService,
			newNotificationService,
			newProfileService,
			newHandlers,
		),
		fx.Invoke(startSweeper, startServer),
	).Run()
}

func newStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	if cfg.StoreDriver == config.DriverMemory {
		logger.Info("using in-memory store with demo data")
		return memory.NewSeeded(), nil
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.ResetDB {
		logger.Warn("RESET_DB=true, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close(gormDB)
		},
	})
	logger.Info("connected to database", zap.String("driver", cfg.StoreDriver))
	return repository.NewGormStore(gormDB), nil
}

// newCache connects to Redis only when sessions or the job cache need it.
// Otherwise it returns a nil client, which every caller treats as a miss.
func newCache(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) *cache.Client {
	if cfg.SessionStore != config.DriverRedis && !cfg.JobCache {
		return nil
	}

	client := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx); err != nil {
				logger.Warn("redis unreachable, continuing without it", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client
}

func newSessionStore(cfg *config.Config, c *cache.Client) auth.SessionStore {
	if cfg.SessionStore == config.DriverRedis {
		return auth.NewRedisSessionStore(c)
	}
	return auth.NewMemorySessionStore()
}

func newGate(cfg *config.Config, sessions auth.SessionStore, logger *zap.Logger) *auth.Gate {
	if cfg.SessionSecret == "change-me" {
		logger.Warn("SESSION_SECRET is unset, using the development default")
	}
	return auth.NewGate(auth.NewTokenSigner(cfg.SessionSecret, cfg.SessionTTL), sessions)
}

func newPublisher(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (events.Publisher, error) {
	if cfg.NATSURL == "" {
		return events.NewNopPublisher(), nil
	}

	publisher, err := events.NewPublisher(cfg.NATSURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			publisher.Close()
			return nil
		},
	})
	return publisher, nil
}

func newJobService(cfg *config.Config, store repository.Store, c *cache.Client) service.JobService {
	if !cfg.JobCache {
		c = nil
	}
	return service.NewJobService(store.Jobs(), store.SavedJobs(), c)
}

func newSavedJobService(store repository.Store) service.SavedJobService {
	return service.NewSavedJobService(store.Jobs(), store.SavedJobs())
}

func newJobSourceService(store repository.Store, publisher events.Publisher, logger *zap.Logger) service.JobSourceService {
	return service.NewJobSourceService(store.JobSources(), publisher, logger)
}

func newNotificationService(store repository.Store) service.NotificationService {
	return service.NewNotificationService(store.Notifications())
}

func newProfileService(store repository.Store) service.ProfileService {
	return service.NewProfileService(store.Users())
}

type handlerParams struct {
	fx.In

	Config        *config.Config
	Auth          service.AuthService
	Jobs          service.JobService
	SavedJobs     service.SavedJobService
	JobSources    service.JobSourceService
	Notifications service.NotificationService
	Profile       service.ProfileService
}

func newHandlers(p handlerParams) router.Handlers {
	cookie := handler.SessionCookie{Name: p.Config.SessionCookie, Secure: p.Config.CookieSecure}
	return router.Handlers{
		Auth:          handler.NewAuthHandler(p.Auth, cookie),
		Jobs:          handler.NewJobHandler(p.Jobs),
		SavedJobs:     handler.NewSavedJobHandler(p.SavedJobs),
		JobSources:    handler.NewJobSourceHandler(p.JobSources),
		Notifications: handler.NewNotificationHandler(p.Notifications),
		Profile:       handler.NewProfileHandler(p.Profile),
	}
}

// startSweeper purges expired in-memory sessions. Redis expires its own keys.
func startSweeper(lc fx.Lifecycle, cfg *config.Config, sessions auth.SessionStore, logger *zap.Logger) error {
	store, ok := sessions.(*auth.MemorySessionStore)
	if !ok {
		return nil
	}

	sweeper, err := auth.NewSweeper(store, cfg.SessionSweep, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: sweeper.Stop,
	})
	return nil
}

func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, logger *zap.Logger, gate *auth.Gate, h router.Handlers) {
	e := echo.New()
	e.HidePort = true
	router.Register(e, cfg, logger, gate, h)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	addr := ":" + cfg.ServerPort
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("server listening",
				zap.String("addr", addr),
				zap.String("swagger", swaggerURL(cfg)),
			)
			go func() {
				if err := e.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return e.Shutdown(ctx)
		},
	})
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
