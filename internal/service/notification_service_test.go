package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobhub/internal/errors"
	"jobhub/internal/model"
	"jobhub/internal/repository"
)

func TestNotificationService(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("ListByUser", mock.Anything, uint(1)).Return([]model.Notification{{ID: 2}, {ID: 1}}, nil)
	repo.On("CountUnread", mock.Anything, uint(1)).Return(int64(2), nil)
	repo.On("FindByID", mock.Anything, uint(2)).Return(&model.Notification{ID: 2, UserID: 1}, nil)
	repo.On("FindByID", mock.Anything, uint(3)).Return(nil, repository.ErrNotFound)
	repo.On("MarkRead", mock.Anything, uint(2)).Return(nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.UserID == 1 && n.Title == "t" && n.Message == "m"
	})).Return(nil)

	svc := NewNotificationService(repo)
	ctx := context.Background()

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	count, err := svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	n, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), n.UserID)

	_, err = svc.Get(ctx, 3)
	assert.Equal(t, errors.TypeNotFound, errors.TypeOf(err))

	require.NoError(t, svc.MarkRead(ctx, 2))

	created, err := svc.Create(ctx, 1, "t", "m")
	require.NoError(t, err)
	assert.False(t, created.Read)

	repo.AssertExpectations(t)
}
