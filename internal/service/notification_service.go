package service

import (
	"context"

	"jobhub/internal/errors"
	"jobhub/internal/model"
	"jobhub/internal/repository"
)

// NotificationService is the per-user notification ledger. It does not check
// ownership; callers compare Get's UserID before MarkRead.
type NotificationService interface {
	List(ctx context.Context, userID uint) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	Get(ctx context.Context, id uint) (*model.Notification, error)
	MarkRead(ctx context.Context, id uint) error
	Create(ctx context.Context, userID uint, title, message string) (*model.Notification, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, userID uint) ([]model.Notification, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Internal("list notifications", err)
	}
	return list, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Internal("count notifications", err)
	}
	return count, nil
}

func (s *notificationService) Get(ctx context.Context, id uint) (*model.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Notification not found", "find notification")
	}
	return n, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uint) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return errors.Internal("mark notification read", err)
	}
	return nil
}

func (s *notificationService) Create(ctx context.Context, userID uint, title, message string) (*model.Notification, error) {
	n := &model.Notification{UserID: userID, Title: title, Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, errors.Internal("create notification", err)
	}
	return n, nil
}
