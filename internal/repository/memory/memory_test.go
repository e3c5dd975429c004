package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobhub/internal/model"
	"jobhub/internal/query"
	"jobhub/internal/repository"
)

// steppingClock returns strictly increasing times.
func steppingClock() func() time.Time {
	t := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func newStore() *Store {
	s := NewSeeded()
	s.clock = steppingClock()
	return s
}

func TestNewSeeded(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	page, err := s.Jobs().List(ctx, query.JobFilter{}.Normalize(), query.NewPagination(1, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)

	job, err := s.Jobs().FindByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, job.SalaryMin.Valid)
	assert.Equal(t, "80000", job.SalaryMin.Decimal.String())

	sources, err := s.JobSources().ListApproved(ctx, query.NewPagination(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(4), sources.Total)
	assert.Equal(t, uint(4), sources.Data[0].ID)
}

func TestUsers(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	u := &model.User{Username: "amal", Password: "hash", Email: "a@x.com"}
	require.NoError(t, s.Users().Create(ctx, u))
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, model.LanguageEnglish, u.PreferredLanguage)

	err := s.Users().Create(ctx, &model.User{Username: "amal", Email: "b@x.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	err = s.Users().Create(ctx, &model.User{Username: "omar", Email: "a@x.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	found, err := s.Users().FindByUsername(ctx, "amal")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = s.Users().FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	other := &model.User{Username: "omar", Email: "o@x.com"}
	require.NoError(t, s.Users().Create(ctx, other))
	other.Email = "a@x.com"
	assert.ErrorIs(t, s.Users().Update(ctx, other), repository.ErrDuplicate)

	found.PreferredLanguage = model.LanguageArabic
	require.NoError(t, s.Users().Update(ctx, found))
	reloaded, err := s.Users().FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LanguageArabic, reloaded.PreferredLanguage)
}

func TestSavedJobs(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	repo := s.SavedJobs()

	require.NoError(t, repo.Create(ctx, &model.SavedJob{UserID: 1, JobID: 2}))
	require.NoError(t, repo.Create(ctx, &model.SavedJob{UserID: 1, JobID: 4}))
	require.NoError(t, repo.Create(ctx, &model.SavedJob{UserID: 2, JobID: 2}))
	assert.ErrorIs(t, repo.Create(ctx, &model.SavedJob{UserID: 1, JobID: 2}), repository.ErrDuplicate)

	ok, err := repo.Exists(ctx, 1, 4)
	require.NoError(t, err)
	assert.True(t, ok)

	saved, err := repo.SavedJobIDs(ctx, 1, []uint{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, map[uint]bool{2: true, 4: true}, saved)

	page, err := repo.ListJobs(ctx, 1, query.NewPagination(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, uint(4), page.Data[0].ID)
	assert.Equal(t, uint(2), page.Data[1].ID)

	require.NoError(t, repo.Delete(ctx, 1, 2))
	require.NoError(t, repo.Delete(ctx, 1, 2))
	ok, err = repo.Exists(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = repo.Exists(ctx, 2, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSavedJobs_ConcurrentSaveKeepsOneRow(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	const workers = 32
	var created, duplicates int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.SavedJobs().Create(ctx, &model.SavedJob{UserID: 7, JobID: 3})
			switch err {
			case nil:
				atomic.AddInt32(&created, 1)
			case repository.ErrDuplicate:
				atomic.AddInt32(&duplicates, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created)
	assert.Equal(t, int32(workers-1), duplicates)

	page, err := s.SavedJobs().ListJobs(ctx, 7, query.NewPagination(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}

func TestJobSources(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	src := &model.JobSource{Name: "Naukrigulf", URL: "https://www.naukrigulf.com", Category: "Job Board"}
	require.NoError(t, s.JobSources().Create(ctx, src))
	assert.Equal(t, uint(5), src.ID)
	assert.False(t, src.Approved)

	found, err := s.JobSources().FindByID(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, "Naukrigulf", found.Name)

	page, err := s.JobSources().ListApproved(ctx, query.NewPagination(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	for _, got := range page.Data {
		assert.NotEqual(t, src.ID, got.ID)
	}
}

func TestNotifications(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	repo := s.Notifications()

	first := &model.Notification{UserID: 1, Title: "a", Message: "a"}
	second := &model.Notification{UserID: 1, Title: "b", Message: "b"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, &model.Notification{UserID: 2, Title: "c", Message: "c"}))

	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	count, err := repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.MarkRead(ctx, first.ID))
	require.NoError(t, repo.MarkRead(ctx, 999))
	count, err = repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	n, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, n.Read)

	empty, err := repo.ListByUser(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestWithTransaction(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	err := s.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		u := &model.User{Username: "amal", Email: "a@x.com"}
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, &model.Notification{UserID: u.ID, Title: "hi", Message: "hi"})
	})
	require.NoError(t, err)

	count, err := s.Notifications().CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
