package usecase

import (
	"context"
	"strings"
	"time"

	"hr360/internal/domain/performance"

	"github.com/google/uuid"
)

type CreateReviewInput struct {
	UserID       uuid.UUID
	Period       string
	Score        int
	Feedback     string
	Goals        []string
	Achievements []string
}

type PerformanceUsecase interface {
	CreateReview(ctx context.Context, reviewerID uuid.UUID, in CreateReviewInput) (performance.Review, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]performance.Review, error)
	ListAll(ctx context.Context) ([]performance.Review, error)
}

type Performance struct {
	repo performance.Repository
	now  func() time.Time
}

func NewPerformanceUsecase(repo performance.Repository) *Performance {
	return &Performance{repo: repo, now: time.Now}
}

func (s *Performance) CreateReview(ctx context.Context, reviewerID uuid.UUID, in CreateReviewInput) (performance.Review, error) {
	if in.UserID == uuid.Nil || reviewerID == uuid.Nil {
		return performance.Review{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Period) == "" || in.Score < 0 || in.Score > 100 {
		return performance.Review{}, ErrInvalidInput
	}

	rev := performance.Review{
		ID:           uuid.New(),
		UserID:       in.UserID,
		ReviewerID:   reviewerID,
		Period:       strings.TrimSpace(in.Period),
		Score:        in.Score,
		Feedback:     in.Feedback,
		Goals:        in.Goals,
		Achievements: in.Achievements,
		CreatedAt:    s.now().UTC(),
	}
	if rev.Goals == nil {
		rev.Goals = []string{}
	}
	if rev.Achievements == nil {
		rev.Achievements = []string{}
	}

	if err := s.repo.Create(ctx, rev); err != nil {
		return performance.Review{}, ErrInternal
	}
	return rev, nil
}

func (s *Performance) ListForUser(ctx context.Context, userID uuid.UUID) ([]performance.Review, error) {
	revs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return revs, nil
}

func (s *Performance) ListAll(ctx context.Context) ([]performance.Review, error) {
	revs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return revs, nil
}
