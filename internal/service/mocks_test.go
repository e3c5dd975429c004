package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobhub/internal/model"
	"jobhub/internal/query"
	"jobhub/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockJobRepository is a mock implementation of JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, filter query.JobFilter, page query.Pagination) (model.Page[model.Job], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(model.Page[model.Job]), args.Error(1)
}

// MockSavedJobRepository is a mock implementation of SavedJobRepository.
type MockSavedJobRepository struct {
	mock.Mock
}

func (m *MockSavedJobRepository) Create(ctx context.Context, saved *model.SavedJob) error {
	args := m.Called(ctx, saved)
	return args.Error(0)
}

func (m *MockSavedJobRepository) Delete(ctx context.Context, userID, jobID uint) error {
	args := m.Called(ctx, userID, jobID)
	return args.Error(0)
}

func (m *MockSavedJobRepository) Exists(ctx context.Context, userID, jobID uint) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSavedJobRepository) SavedJobIDs(ctx context.Context, userID uint, jobIDs []uint) (map[uint]bool, error) {
	args := m.Called(ctx, userID, jobIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]bool), args.Error(1)
}

func (m *MockSavedJobRepository) ListJobs(ctx context.Context, userID uint, page query.Pagination) (model.Page[model.Job], error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).(model.Page[model.Job]), args.Error(1)
}

// MockJobSourceRepository is a mock implementation of JobSourceRepository.
type MockJobSourceRepository struct {
	mock.Mock
}

func (m *MockJobSourceRepository) Create(ctx context.Context, source *model.JobSource) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockJobSourceRepository) FindByID(ctx context.Context, id uint) (*model.JobSource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobSource), args.Error(1)
}

func (m *MockJobSourceRepository) ListApproved(ctx context.Context, page query.Pagination) (model.Page[model.JobSource], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(model.Page[model.JobSource]), args.Error(1)
}

// MockNotificationRepository is a mock implementation of NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uint) (*model.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID uint) ([]model.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStore hands out the mock repositories and runs transactions inline.
type MockStore struct {
	users         *MockUserRepository
	notifications *MockNotificationRepository
}

func (s *MockStore) Users() repository.UserRepository                 { return s.users }
func (s *MockStore) Jobs() repository.JobRepository                   { return nil }
func (s *MockStore) SavedJobs() repository.SavedJobRepository         { return nil }
func (s *MockStore) JobSources() repository.JobSourceRepository       { return nil }
func (s *MockStore) Notifications() repository.NotificationRepository { return s.notifications }

func (s *MockStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	return fn(ctx, s)
}

// MockPublisher is a mock implementation of events.Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) JobSourceSubmitted(ctx context.Context, source *model.JobSource) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockPublisher) Close() {}
