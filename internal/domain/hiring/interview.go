package hiring

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

var (
	ErrInterviewNotFound = errors.New("interview not found")
	ErrInterviewClosed   = errors.New("interview already completed or cancelled")
)

type Interview struct {
	ID            uuid.UUID       `json:"id"`
	CandidateID   uuid.UUID       `json:"candidate_id"`
	InterviewerID uuid.UUID       `json:"interviewer_id"`
	Position      string          `json:"position"`
	ScheduledAt   time.Time       `json:"scheduled_at"`
	Status        InterviewStatus `json:"status"`
	Feedback      *string         `json:"feedback,omitempty"`
	Rating        *int            `json:"rating,omitempty"`
	MeetingLink   *string         `json:"meeting_link,omitempty"`
}

// Terminal reports whether the interview can no longer change state:
// scheduled -> completed|cancelled is one-way, with no re-scheduling.
func (i Interview) Terminal() bool {
	return i.Status == InterviewCompleted || i.Status == InterviewCancelled
}

type InterviewRepository interface {
	Create(ctx context.Context, iv Interview) error
	GetByID(ctx context.Context, id uuid.UUID) (Interview, error)
	ListAll(ctx context.Context) ([]Interview, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Interview, error)
	Complete(ctx context.Context, id uuid.UUID, feedback string, rating int) error
	Cancel(ctx context.Context, id uuid.UUID) error
}
