package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgres opens a Postgres store.
func NewPostgres(dsn string, pool Pool) (*gorm.DB, error) {
	db, err := open(postgres.Open(dsn), pool)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}
