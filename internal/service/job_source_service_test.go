package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobhub/internal/errors"
	"jobhub/internal/model"
	"jobhub/internal/repository"
)

func TestJobSourceService_Submit(t *testing.T) {
	repo := new(MockJobSourceRepository)
	pub := new(MockPublisher)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.JobSource) bool {
		return s.Name == "Naukrigulf" && !s.Approved
	})).Run(func(args mock.Arguments) { args.Get(1).(*model.JobSource).ID = 5 }).Return(nil)
	pub.On("JobSourceSubmitted", mock.Anything, mock.AnythingOfType("*model.JobSource")).Return(nil)

	svc := NewJobSourceService(repo, pub, zap.NewNop())
	got, err := svc.Submit(context.Background(), JobSourceInput{
		Name: "Naukrigulf", URL: "https://www.naukrigulf.com", Category: "Job Board",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)
	assert.False(t, got.Approved)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestJobSourceService_SubmitSurvivesPublishFailure(t *testing.T) {
	repo := new(MockJobSourceRepository)
	pub := new(MockPublisher)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	pub.On("JobSourceSubmitted", mock.Anything, mock.Anything).Return(stderrors.New("nats: no servers available"))

	_, err := NewJobSourceService(repo, pub, zap.NewNop()).
		Submit(context.Background(), JobSourceInput{Name: "x", URL: "https://x.io", Category: "Job Board"})
	assert.NoError(t, err)
}

func TestJobSourceService_SubmitStoreFailure(t *testing.T) {
	repo := new(MockJobSourceRepository)
	pub := new(MockPublisher)
	repo.On("Create", mock.Anything, mock.Anything).Return(stderrors.New("disk full"))

	_, err := NewJobSourceService(repo, pub, zap.NewNop()).
		Submit(context.Background(), JobSourceInput{Name: "x", URL: "https://x.io", Category: "Job Board"})
	assert.Equal(t, errors.TypeInternal, errors.TypeOf(err))
	pub.AssertNotCalled(t, "JobSourceSubmitted", mock.Anything, mock.Anything)
}

func TestJobSourceService_Get(t *testing.T) {
	repo := new(MockJobSourceRepository)
	repo.On("FindByID", mock.Anything, uint(5)).Return(&model.JobSource{ID: 5}, nil)
	repo.On("FindByID", mock.Anything, uint(6)).Return(nil, repository.ErrNotFound)
	svc := NewJobSourceService(repo, new(MockPublisher), zap.NewNop())

	got, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)

	_, err = svc.Get(context.Background(), 6)
	assert.Equal(t, errors.TypeNotFound, errors.TypeOf(err))
}
