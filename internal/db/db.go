// Package db opens the SQL stores and keeps their schema current.
package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobhub/internal/config"
	"jobhub/internal/model"
)

// Models lists every table, parents before children.
var Models = []interface{}{
	&model.User{},
	&model.Job{},
	&model.SavedJob{},
	&model.JobSource{},
	&model.Notification{},
}

// Pool bounds the connections kept by a SQL store.
type Pool struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// PoolFromConfig reads the pool settings from cfg.
func PoolFromConfig(cfg *config.Config) Pool {
	return Pool{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// open connects through dialector, applies pool and checks the connection.
func open(dialector gorm.Dialector, pool Pool) (*gorm.DB, error) {
	gormDB, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return gormDB, nil
}

// Open connects to the SQL store named by cfg.StoreDriver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	pool := PoolFromConfig(cfg)
	switch cfg.StoreDriver {
	case config.DriverMySQL:
		return NewMySQL(cfg.MySQLDSN, pool)
	case config.DriverPostgres:
		return NewPostgres(cfg.PostgresDSN, pool)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", cfg.StoreDriver)
	}
}

// Migrate creates or updates every table. With reset, existing tables are
// dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		// Children first so foreign keys do not block the drop.
		for i := len(Models) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(Models[i]); err != nil {
				return fmt.Errorf("drop table: %w", err)
			}
		}
	}
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
