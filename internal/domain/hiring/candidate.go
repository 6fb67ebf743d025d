package hiring

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type CandidateStatus string

const (
	StatusApplied   CandidateStatus = "applied"
	StatusScreening CandidateStatus = "screening"
	StatusInterview CandidateStatus = "interview"
	StatusOffered   CandidateStatus = "offered"
	StatusHired     CandidateStatus = "hired"
	StatusRejected  CandidateStatus = "rejected"
)

func (s CandidateStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterview, StatusOffered, StatusHired, StatusRejected:
		return true
	}
	return false
}

var ErrCandidateNotFound = errors.New("candidate not found")

type Candidate struct {
	ID         uuid.UUID       `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	ResumeURL  *string         `json:"resume_url,omitempty"`
	Status     CandidateStatus `json:"status"`
	AppliedAt  string          `json:"applied_at"`
	AIScore    *int            `json:"ai_score,omitempty"`
	Skills     []string        `json:"skills,omitempty"`
	Experience *string         `json:"experience,omitempty"`
	Education  *string         `json:"education,omitempty"`
}

// AnalysisFields is what the screening engine derives; written once per
// analyze call, never recomputed automatically.
type AnalysisFields struct {
	Skills     []string
	Experience string
	Education  string
	AIScore    int
}

type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	ListByStatus(ctx context.Context, status CandidateStatus) ([]Candidate, error)
	SetStatus(ctx context.Context, id uuid.UUID, status CandidateStatus) error
	SetAnalysis(ctx context.Context, id uuid.UUID, f AnalysisFields) error
	CountByStatus(ctx context.Context, status CandidateStatus) (int, error)
}
