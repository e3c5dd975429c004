package repository

import (
	"context"
	"errors"

	"jobhub/internal/model"
	"jobhub/internal/query"
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness rule.
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// JobRepository defines job persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	List(ctx context.Context, filter query.JobFilter, page query.Pagination) (model.Page[model.Job], error)
}

// SavedJobRepository defines bookmark persistence operations.
type SavedJobRepository interface {
	// Create returns ErrDuplicate when the user already saved the job.
	Create(ctx context.Context, saved *model.SavedJob) error
	Delete(ctx context.Context, userID, jobID uint) error
	Exists(ctx context.Context, userID, jobID uint) (bool, error)
	// SavedJobIDs reports which of jobIDs the user has saved.
	SavedJobIDs(ctx context.Context, userID uint, jobIDs []uint) (map[uint]bool, error)
	// ListJobs pages through the user's saved jobs, most recently saved first.
	ListJobs(ctx context.Context, userID uint, page query.Pagination) (model.Page[model.Job], error)
}

// JobSourceRepository defines job source persistence operations.
type JobSourceRepository interface {
	Create(ctx context.Context, source *model.JobSource) error
	FindByID(ctx context.Context, id uint) (*model.JobSource, error)
	ListApproved(ctx context.Context, page query.Pagination) (model.Page[model.JobSource], error)
}

// NotificationRepository defines notification persistence operations.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByID(ctx context.Context, id uint) (*model.Notification, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, id uint) error
}

// Store groups the repositories of one backing store.
type Store interface {
	Users() UserRepository
	Jobs() JobRepository
	SavedJobs() SavedJobRepository
	JobSources() JobSourceRepository
	Notifications() NotificationRepository
	// WithTransaction runs fn against a store whose writes commit together.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
