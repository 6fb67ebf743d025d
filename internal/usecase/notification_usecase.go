package usecase

import (
	"context"
	"errors"

	"hr360/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationUsecase interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type Notifications struct {
	repo notification.Repository
}

func NewNotificationUsecase(repo notification.Repository) *Notifications {
	return &Notifications{repo: repo}
}

func (s *Notifications) ListForUser(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (s *Notifications) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (s *Notifications) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}
