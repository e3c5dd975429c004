package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL opens a MySQL store. String columns without an explicit size get
// VARCHAR(255) so they stay indexable under utf8mb4.
func NewMySQL(dsn string, pool Pool) (*gorm.DB, error) {
	db, err := open(mysql.New(mysql.Config{
		DSN:               dsn,
		DefaultStringSize: 255,
	}), pool)
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
