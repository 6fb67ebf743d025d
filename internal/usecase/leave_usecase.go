package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hr360/internal/domain/leave"
	"hr360/internal/domain/notification"

	"github.com/google/uuid"
)

var ErrLeaveAlreadyDecided = errors.New("leave request already decided")

type CreateLeaveInput struct {
	Type      leave.Type
	StartDate string
	EndDate   string
	Reason    string
}

type LeaveUsecase interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, in CreateLeaveInput) (leave.Request, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]leave.Request, error)
	ListAll(ctx context.Context) ([]leave.Request, error)
	Decide(ctx context.Context, id uuid.UUID, approve bool, decidedBy uuid.UUID) (leave.Request, error)
}

type Leaves struct {
	repo     leave.Repository
	notifier *Notifier
	now      func() time.Time
}

func NewLeaveUsecase(repo leave.Repository, notifier *Notifier) *Leaves {
	return &Leaves{repo: repo, notifier: notifier, now: time.Now}
}

func (s *Leaves) CreateRequest(ctx context.Context, userID uuid.UUID, in CreateLeaveInput) (leave.Request, error) {
	if !in.Type.Valid() || strings.TrimSpace(in.Reason) == "" {
		return leave.Request{}, ErrInvalidInput
	}

	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return leave.Request{}, ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return leave.Request{}, ErrInvalidInput
	}
	if end.Before(start) {
		return leave.Request{}, ErrInvalidInput
	}

	req := leave.Request{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      in.Type,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    strings.TrimSpace(in.Reason),
		Status:    leave.StatusPending,
		AppliedAt: s.now().UTC().Format("2006-01-02"),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return leave.Request{}, ErrInternal
	}
	return req, nil
}

func (s *Leaves) ListForUser(ctx context.Context, userID uuid.UUID) ([]leave.Request, error) {
	reqs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return reqs, nil
}

func (s *Leaves) ListAll(ctx context.Context) ([]leave.Request, error) {
	reqs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return reqs, nil
}

func (s *Leaves) Decide(ctx context.Context, id uuid.UUID, approve bool, decidedBy uuid.UUID) (leave.Request, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			return leave.Request{}, ErrNotFound
		}
		return leave.Request{}, ErrInternal
	}
	if req.Status != leave.StatusPending {
		return leave.Request{}, ErrLeaveAlreadyDecided
	}

	status := leave.StatusRejected
	if approve {
		status = leave.StatusApproved
	}

	if err := s.repo.SetStatus(ctx, id, status, decidedBy); err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			return leave.Request{}, ErrNotFound
		}
		return leave.Request{}, ErrInternal
	}

	req.Status = status
	req.ApprovedBy = &decidedBy

	typ := notification.TypeWarning
	if approve {
		typ = notification.TypeSuccess
	}
	s.notifier.Notify(ctx, req.UserID,
		"Leave request "+string(status),
		fmt.Sprintf("Your %s leave from %s to %s has been %s.", req.Type, req.StartDate, req.EndDate, status),
		typ,
	)

	return req, nil
}
