package router

import (
	stderrors "errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"jobhub/internal/auth"
	"jobhub/internal/config"
	"jobhub/internal/errors"
	"jobhub/internal/handler"
	"jobhub/internal/logging"
)

// Handlers groups every handler the route table needs.
type Handlers struct {
	Auth          *handler.AuthHandler
	Jobs          *handler.JobHandler
	SavedJobs     *handler.SavedJobHandler
	JobSources    *handler.JobSourceHandler
	Notifications *handler.NotificationHandler
	Profile       *handler.ProfileHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, logger *zap.Logger, gate *auth.Gate, h Handlers) {
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler(e, logger)

	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowCredentials: !allowsAnyOrigin(cfg.CORSOrigins),
	}))

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	required := RequireSession(gate, cfg.SessionCookie)
	optional := OptionalSession(gate, cfg.SessionCookie)

	api := e.Group("/api")

	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/logout", h.Auth.Logout, required)
	api.GET("/auth/me", h.Auth.Me, required)
	api.GET("/auth/google", h.Auth.Google)

	api.GET("/jobs", h.Jobs.ListJobs, optional)
	api.GET("/jobs/:id", h.Jobs.GetJob, optional)

	api.GET("/saved-jobs", h.SavedJobs.ListSavedJobs, required)
	api.POST("/saved-jobs", h.SavedJobs.SaveJob, required)
	api.DELETE("/saved-jobs/:id", h.SavedJobs.UnsaveJob, required)

	api.GET("/job-sources", h.JobSources.ListJobSources)
	api.POST("/job-sources", h.JobSources.SubmitJobSource)

	api.GET("/notifications", h.Notifications.ListNotifications, required)
	api.GET("/notifications/count", h.Notifications.CountUnread, required)
	api.PATCH("/notifications/:id/read", h.Notifications.MarkRead, required)

	api.PATCH("/profile", h.Profile.UpdateProfile, required)
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// sessionConfig reads the session token from cookieName and resolves it
// through gate. The resolved *auth.Principal lands under handler.PrincipalKey.
func sessionConfig(gate *auth.Gate, cookieName string) echojwt.Config {
	return echojwt.Config{
		ContextKey:  handler.PrincipalKey,
		TokenLookup: "cookie:" + cookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return gate.Resolve(c.Request().Context(), token)
		},
	}
}

// RequireSession rejects requests without a valid session with 401.
func RequireSession(gate *auth.Gate, cookieName string) echo.MiddlewareFunc {
	cfg := sessionConfig(gate, cookieName)
	cfg.ErrorHandler = func(c echo.Context, err error) error {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Message: "Not authenticated",
			Code:    string(errors.TypeUnauthenticated),
		})
	}
	return echojwt.WithConfig(cfg)
}

// OptionalSession resolves a session when one is present and otherwise lets
// the request through anonymously.
func OptionalSession(gate *auth.Gate, cookieName string) echo.MiddlewareFunc {
	cfg := sessionConfig(gate, cookieName)
	cfg.ContinueOnIgnoredError = true
	cfg.ErrorHandler = func(c echo.Context, err error) error {
		return nil
	}
	return echojwt.WithConfig(cfg)
}

// errorHandler logs server errors with their cause before the default
// handler writes the response.
func errorHandler(e *echo.Echo, logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !stderrors.As(err, &he) || he.Code >= http.StatusInternalServerError {
			fields := []zap.Field{
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Error(err),
			}
			var de *errors.DomainError
			if stderrors.As(err, &de) {
				fields = append(fields, zap.ByteString("stack", de.StackTrace()))
			}
			logger.Error("request failed", fields...)
		}
		if he == nil {
			err = echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Message: "internal server error",
				Code:    string(errors.TypeInternal),
			}).SetInternal(err)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
