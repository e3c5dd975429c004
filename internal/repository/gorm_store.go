package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by a GORM connection. The connection
// should be opened with TranslateError so duplicate keys surface as
// gorm.ErrDuplicatedKey.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository                 { return NewUserRepository(s.db) }
func (s *gormStore) Jobs() JobRepository                   { return NewJobRepository(s.db) }
func (s *gormStore) SavedJobs() SavedJobRepository         { return NewSavedJobRepository(s.db) }
func (s *gormStore) JobSources() JobSourceRepository       { return NewJobSourceRepository(s.db) }
func (s *gormStore) Notifications() NotificationRepository { return NewNotificationRepository(s.db) }

// WithTransaction runs fn inside a database transaction.
func (s *gormStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &gormStore{db: tx})
	})
}

// translate maps GORM errors onto repository errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return fmt.Errorf("database: %w", err)
	}
}
