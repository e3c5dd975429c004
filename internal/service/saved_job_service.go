package service

import (
	"context"
	stderrors "errors"

	"jobhub/internal/errors"
	"jobhub/internal/model"
	"jobhub/internal/query"
	"jobhub/internal/repository"
)

// SavedJobService manages a user's bookmarks.
type SavedJobService interface {
	Save(ctx context.Context, userID, jobID uint) (*model.SavedJob, error)
	Unsave(ctx context.Context, userID, jobID uint) error
	IsSaved(ctx context.Context, userID, jobID uint) (bool, error)
	List(ctx context.Context, userID uint, page query.Pagination) (model.Page[model.JobView], error)
}

type savedJobService struct {
	jobs  repository.JobRepository
	saved repository.SavedJobRepository
}

// NewSavedJobService creates a new saved job service.
func NewSavedJobService(jobs repository.JobRepository, saved repository.SavedJobRepository) SavedJobService {
	return &savedJobService{jobs: jobs, saved: saved}
}

// Save bookmarks a job. Saving the same job twice is a Conflict, whether the
// existence check or the store catches it.
func (s *savedJobService) Save(ctx context.Context, userID, jobID uint) (*model.SavedJob, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, notFoundOr(err, "Job not found", "find job")
	}

	exists, err := s.saved.Exists(ctx, userID, jobID)
	if err != nil {
		return nil, errors.Internal("check saved job", err)
	}
	if exists {
		return nil, errors.Conflict("Job already saved")
	}

	saved := &model.SavedJob{UserID: userID, JobID: jobID}
	if err := s.saved.Create(ctx, saved); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.Conflict("Job already saved")
		}
		return nil, errors.Internal("save job", err)
	}
	return saved, nil
}

// Unsave removes the bookmark; a missing bookmark is not an error.
func (s *savedJobService) Unsave(ctx context.Context, userID, jobID uint) error {
	if err := s.saved.Delete(ctx, userID, jobID); err != nil {
		return errors.Internal("unsave job", err)
	}
	return nil
}

func (s *savedJobService) IsSaved(ctx context.Context, userID, jobID uint) (bool, error) {
	ok, err := s.saved.Exists(ctx, userID, jobID)
	if err != nil {
		return false, errors.Internal("check saved job", err)
	}
	return ok, nil
}

// List pages through the user's saved jobs, most recently saved first.
func (s *savedJobService) List(ctx context.Context, userID uint, page query.Pagination) (model.Page[model.JobView], error) {
	jobs, err := s.saved.ListJobs(ctx, userID, page)
	if err != nil {
		return model.Page[model.JobView]{}, errors.Internal("list saved jobs", err)
	}

	views := make([]model.JobView, 0, len(jobs.Data))
	for _, j := range jobs.Data {
		views = append(views, model.NewJobView(j, true))
	}
	return model.NewPage(views, jobs.Total, jobs.Page, jobs.Limit), nil
}
