package service

import (
	"context"
	"fmt"
	"time"

	"jobhub/internal/cache"
	"jobhub/internal/errors"
	"jobhub/internal/model"
	"jobhub/internal/query"
	"jobhub/internal/repository"
)

const jobCacheTTL = 5 * time.Minute

// JobService exposes job browsing. A viewerID of 0 is an anonymous caller.
type JobService interface {
	List(ctx context.Context, viewerID uint, filter query.JobFilter, page query.Pagination) (model.Page[model.JobView], error)
	Get(ctx context.Context, viewerID, id uint) (*model.JobView, error)
}

type jobService struct {
	jobs  repository.JobRepository
	saved repository.SavedJobRepository
	cache *cache.Client
}

// NewJobService creates a new job service. cache may be nil.
func NewJobService(jobs repository.JobRepository, saved repository.SavedJobRepository, cache *cache.Client) JobService {
	return &jobService{jobs: jobs, saved: saved, cache: cache}
}

func (s *jobService) cacheKey(id uint) string {
	return fmt.Sprintf("job:%d", id)
}

// List runs the listing pipeline and, for a signed-in viewer, flags the jobs
// they saved.
func (s *jobService) List(ctx context.Context, viewerID uint, filter query.JobFilter, page query.Pagination) (model.Page[model.JobView], error) {
	jobs, err := s.jobs.List(ctx, filter, page)
	if err != nil {
		return model.Page[model.JobView]{}, errors.Internal("list jobs", err)
	}

	var saved map[uint]bool
	if viewerID != 0 {
		ids := make([]uint, 0, len(jobs.Data))
		for _, j := range jobs.Data {
			ids = append(ids, j.ID)
		}
		saved, err = s.saved.SavedJobIDs(ctx, viewerID, ids)
		if err != nil {
			return model.Page[model.JobView]{}, errors.Internal("load saved jobs", err)
		}
	}

	views := make([]model.JobView, 0, len(jobs.Data))
	for _, j := range jobs.Data {
		if viewerID == 0 {
			views = append(views, model.JobView{Job: j})
			continue
		}
		views = append(views, model.NewJobView(j, saved[j.ID]))
	}
	return model.NewPage(views, jobs.Total, jobs.Page, jobs.Limit), nil
}

// Get returns a job with its saved flag, reading through the cache.
func (s *jobService) Get(ctx context.Context, viewerID, id uint) (*model.JobView, error) {
	job, err := s.findJob(ctx, id)
	if err != nil {
		return nil, err
	}

	saved := false
	if viewerID != 0 {
		saved, err = s.saved.Exists(ctx, viewerID, id)
		if err != nil {
			return nil, errors.Internal("check saved job", err)
		}
	}
	view := model.NewJobView(*job, saved)
	return &view, nil
}

func (s *jobService) findJob(ctx context.Context, id uint) (*model.Job, error) {
	var cached model.Job
	if s.cache.Lookup(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Job not found", "find job")
	}

	s.cache.Remember(ctx, s.cacheKey(id), job, jobCacheTTL)
	return job, nil
}
