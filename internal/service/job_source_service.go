package service

import (
	"context"

	"go.uber.org/zap"

	"jobhub/internal/errors"
	"jobhub/internal/events"
	"jobhub/internal/model"
	"jobhub/internal/query"
	"jobhub/internal/repository"
)

// JobSourceInput is a job board submission.
type JobSourceInput struct {
	Name           string
	URL            string
	Category       string
	Description    *string
	SubmitterEmail *string
}

// JobSourceService handles job board submissions and the public list.
type JobSourceService interface {
	Submit(ctx context.Context, in JobSourceInput) (*model.JobSource, error)
	List(ctx context.Context, page query.Pagination) (model.Page[model.JobSource], error)
	Get(ctx context.Context, id uint) (*model.JobSource, error)
}

type jobSourceService struct {
	repo      repository.JobSourceRepository
	publisher events.Publisher
	logger    *zap.Logger
}

// NewJobSourceService creates a new job source service.
func NewJobSourceService(repo repository.JobSourceRepository, publisher events.Publisher, logger *zap.Logger) JobSourceService {
	return &jobSourceService{repo: repo, publisher: publisher, logger: logger}
}

// Submit stores an unapproved source and announces it. A failed announcement
// is logged and does not fail the submission.
func (s *jobSourceService) Submit(ctx context.Context, in JobSourceInput) (*model.JobSource, error) {
	source := &model.JobSource{
		Name:           in.Name,
		URL:            in.URL,
		Category:       in.Category,
		Description:    in.Description,
		SubmitterEmail: in.SubmitterEmail,
	}
	if err := s.repo.Create(ctx, source); err != nil {
		return nil, errors.Internal("create job source", err)
	}

	if err := s.publisher.JobSourceSubmitted(ctx, source); err != nil {
		s.logger.Warn("job source event not published",
			zap.Uint("job_source_id", source.ID),
			zap.Error(err))
	}
	return source, nil
}

// List returns approved sources only.
func (s *jobSourceService) List(ctx context.Context, page query.Pagination) (model.Page[model.JobSource], error) {
	sources, err := s.repo.ListApproved(ctx, page)
	if err != nil {
		return model.Page[model.JobSource]{}, errors.Internal("list job sources", err)
	}
	return sources, nil
}

// Get returns any source, approved or not.
func (s *jobSourceService) Get(ctx context.Context, id uint) (*model.JobSource, error) {
	source, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Job source not found", "find job source")
	}
	return source, nil
}
