// Package memory is a process-local Store, preloaded with the demo listings.
// All state is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"jobhub/internal/model"
	"jobhub/internal/query"
	"jobhub/internal/repository"
	"jobhub/internal/seed"
)

// Store keeps every entity in maps guarded by a single lock.
type Store struct {
	mu    sync.RWMutex
	clock func() time.Time

	users         map[uint]model.User
	jobs          map[uint]model.Job
	savedJobs     map[uint]model.SavedJob
	jobSources    map[uint]model.JobSource
	notifications map[uint]model.Notification

	nextUserID         uint
	nextJobID          uint
	nextSavedJobID     uint
	nextJobSourceID    uint
	nextNotificationID uint
}

var _ repository.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		clock:              time.Now,
		users:              make(map[uint]model.User),
		jobs:               make(map[uint]model.Job),
		savedJobs:          make(map[uint]model.SavedJob),
		jobSources:         make(map[uint]model.JobSource),
		notifications:      make(map[uint]model.Notification),
		nextUserID:         1,
		nextJobID:          1,
		nextSavedJobID:     1,
		nextJobSourceID:    1,
		nextNotificationID: 1,
	}
}

// NewSeeded returns a store holding the demo jobs and job sources.
func NewSeeded() *Store {
	s := New()
	now := s.clock()
	for _, job := range seed.Jobs(now) {
		s.putJob(job)
	}
	for _, src := range seed.JobSources(now) {
		s.putJobSource(src)
	}
	return s
}

func (s *Store) putJob(job model.Job) {
	job.DeriveSalary()
	s.jobs[job.ID] = job
	if job.ID >= s.nextJobID {
		s.nextJobID = job.ID + 1
	}
}

func (s *Store) putJobSource(src model.JobSource) {
	s.jobSources[src.ID] = src
	if src.ID >= s.nextJobSourceID {
		s.nextJobSourceID = src.ID + 1
	}
}

func (s *Store) Users() repository.UserRepository                 { return userRepo{s} }
func (s *Store) Jobs() repository.JobRepository                   { return jobRepo{s} }
func (s *Store) SavedJobs() repository.SavedJobRepository         { return savedJobRepo{s} }
func (s *Store) JobSources() repository.JobSourceRepository       { return jobSourceRepo{s} }
func (s *Store) Notifications() repository.NotificationRepository { return notificationRepo{s} }

// WithTransaction runs fn against the store itself. Each write is atomic on
// its own; a failing fn does not roll back earlier writes.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	return fn(ctx, s)
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *model.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	now := s.clock()
	user.ID = s.nextUserID
	s.nextUserID++
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = model.LanguageEnglish
	}
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = *user
	return nil
}

func (r userRepo) Update(_ context.Context, user *model.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, u := range s.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.UpdatedAt = s.clock()
	s.users[user.ID] = *user
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Username == username })
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Email == email })
}

func (r userRepo) find(match func(model.User) bool) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type jobRepo struct{ s *Store }

func (r jobRepo) Create(_ context.Context, job *model.Job) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == 0 {
		job.ID = s.nextJobID
	} else if _, ok := s.jobs[job.ID]; ok {
		return repository.ErrDuplicate
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = s.clock()
	}
	job.DeriveSalary()
	s.putJob(*job)
	return nil
}

func (r jobRepo) FindByID(_ context.Context, id uint) (*model.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	job, ok := r.s.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &job, nil
}

func (r jobRepo) List(_ context.Context, filter query.JobFilter, page query.Pagination) (model.Page[model.Job], error) {
	r.s.mu.RLock()
	jobs := make([]model.Job, 0, len(r.s.jobs))
	for _, job := range r.s.jobs {
		jobs = append(jobs, job)
	}
	r.s.mu.RUnlock()

	return query.ListJobs(jobs, filter, page), nil
}

type savedJobRepo struct{ s *Store }

// Create checks and inserts under one write lock, so concurrent saves of the
// same pair yield exactly one row.
func (r savedJobRepo) Create(_ context.Context, saved *model.SavedJob) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sj := range s.savedJobs {
		if sj.UserID == saved.UserID && sj.JobID == saved.JobID {
			return repository.ErrDuplicate
		}
	}
	saved.ID = s.nextSavedJobID
	s.nextSavedJobID++
	saved.CreatedAt = s.clock()
	s.savedJobs[saved.ID] = *saved
	return nil
}

func (r savedJobRepo) Delete(_ context.Context, userID, jobID uint) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sj := range s.savedJobs {
		if sj.UserID == userID && sj.JobID == jobID {
			delete(s.savedJobs, id)
		}
	}
	return nil
}

func (r savedJobRepo) Exists(_ context.Context, userID, jobID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sj := range r.s.savedJobs {
		if sj.UserID == userID && sj.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r savedJobRepo) SavedJobIDs(_ context.Context, userID uint, jobIDs []uint) (map[uint]bool, error) {
	wanted := make(map[uint]bool, len(jobIDs))
	for _, id := range jobIDs {
		wanted[id] = true
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	saved := make(map[uint]bool, len(jobIDs))
	for _, sj := range r.s.savedJobs {
		if sj.UserID == userID && wanted[sj.JobID] {
			saved[sj.JobID] = true
		}
	}
	return saved, nil
}

func (r savedJobRepo) ListJobs(_ context.Context, userID uint, page query.Pagination) (model.Page[model.Job], error) {
	r.s.mu.RLock()
	var rows []model.SavedJob
	for _, sj := range r.s.savedJobs {
		if sj.UserID == userID {
			rows = append(rows, sj)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ID > rows[j].ID
	})
	jobs := make([]model.Job, 0, len(rows))
	for _, sj := range rows {
		if job, ok := r.s.jobs[sj.JobID]; ok {
			jobs = append(jobs, job)
		}
	}
	r.s.mu.RUnlock()

	return query.Paginate(jobs, page), nil
}

type jobSourceRepo struct{ s *Store }

func (r jobSourceRepo) Create(_ context.Context, src *model.JobSource) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	src.ID = s.nextJobSourceID
	src.CreatedAt = s.clock()
	s.putJobSource(*src)
	return nil
}

func (r jobSourceRepo) FindByID(_ context.Context, id uint) (*model.JobSource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	src, ok := r.s.jobSources[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &src, nil
}

func (r jobSourceRepo) ListApproved(_ context.Context, page query.Pagination) (model.Page[model.JobSource], error) {
	r.s.mu.RLock()
	var sources []model.JobSource
	for _, src := range r.s.jobSources {
		if src.Approved {
			sources = append(sources, src)
		}
	}
	r.s.mu.RUnlock()

	sort.Slice(sources, func(i, j int) bool {
		if !sources[i].CreatedAt.Equal(sources[j].CreatedAt) {
			return sources[i].CreatedAt.After(sources[j].CreatedAt)
		}
		return sources[i].ID > sources[j].ID
	})
	return query.Paginate(sources, page), nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) Create(_ context.Context, n *model.Notification) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.nextNotificationID
	s.nextNotificationID++
	n.CreatedAt = s.clock()
	s.notifications[n.ID] = *n
	return nil
}

func (r notificationRepo) FindByID(_ context.Context, id uint) (*model.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &n, nil
}

func (r notificationRepo) ListByUser(_ context.Context, userID uint) ([]model.Notification, error) {
	r.s.mu.RLock()
	out := []model.Notification{}
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	r.s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r notificationRepo) CountUnread(_ context.Context, userID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, n := range r.s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r notificationRepo) MarkRead(_ context.Context, id uint) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.notifications[id]; ok {
		n.Read = true
		s.notifications[id] = n
	}
	return nil
}
