package performance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("performance review not found")

type Review struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	ReviewerID   uuid.UUID `json:"reviewer_id"`
	Period       string    `json:"period"`
	Score        int       `json:"score"`
	Feedback     string    `json:"feedback"`
	Goals        []string  `json:"goals"`
	Achievements []string  `json:"achievements"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, r Review) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Review, error)
	ListAll(ctx context.Context) ([]Review, error)
}
