package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hr360/internal/domain/hiring"
	"hr360/internal/domain/notification"
	"hr360/internal/domain/screening"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrInterviewDone = errors.New("interview already completed or cancelled")
	ErrEmptyResume   = errors.New("empty resume text")
)

type CreateCandidateInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Position  string
	ResumeURL *string
}

type ScheduleInterviewInput struct {
	CandidateID   uuid.UUID
	InterviewerID uuid.UUID
	Position      string
	ScheduledAt   time.Time
	MeetingLink   *string
}

type HiringUsecase interface {
	CreateCandidate(ctx context.Context, in CreateCandidateInput) (hiring.Candidate, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (hiring.Candidate, error)
	ListCandidates(ctx context.Context, status string) ([]hiring.Candidate, error)
	SetCandidateStatus(ctx context.Context, id uuid.UUID, status hiring.CandidateStatus) (hiring.Candidate, error)
	AnalyzeResume(ctx context.Context, id uuid.UUID, resumeText string) (screening.Analysis, error)

	ScheduleInterview(ctx context.Context, in ScheduleInterviewInput) (hiring.Interview, error)
	ListInterviews(ctx context.Context) ([]hiring.Interview, error)
	ListInterviewsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]hiring.Interview, error)
	CompleteInterview(ctx context.Context, id uuid.UUID, feedback string, rating int) (hiring.Interview, error)
	CancelInterview(ctx context.Context, id uuid.UUID) (hiring.Interview, error)
}

type Hiring struct {
	candidates hiring.CandidateRepository
	interviews hiring.InterviewRepository
	notifier   *Notifier
	now        func() time.Time
}

func NewHiringUsecase(candidates hiring.CandidateRepository, interviews hiring.InterviewRepository, notifier *Notifier) *Hiring {
	return &Hiring{candidates: candidates, interviews: interviews, notifier: notifier, now: time.Now}
}

func (s *Hiring) CreateCandidate(ctx context.Context, in CreateCandidateInput) (hiring.Candidate, error) {
	email := normalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return hiring.Candidate{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Position) == "" {
		return hiring.Candidate{}, ErrInvalidInput
	}

	c := hiring.Candidate{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Position:  strings.TrimSpace(in.Position),
		ResumeURL: in.ResumeURL,
		Status:    hiring.StatusApplied,
		AppliedAt: s.now().UTC().Format("2006-01-02"),
	}
	if err := s.candidates.Create(ctx, c); err != nil {
		return hiring.Candidate{}, ErrInternal
	}
	return c, nil
}

func (s *Hiring) GetCandidate(ctx context.Context, id uuid.UUID) (hiring.Candidate, error) {
	c, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hiring.ErrCandidateNotFound) {
			return hiring.Candidate{}, ErrNotFound
		}
		return hiring.Candidate{}, ErrInternal
	}
	return c, nil
}

func (s *Hiring) ListCandidates(ctx context.Context, status string) ([]hiring.Candidate, error) {
	if status == "" {
		list, err := s.candidates.List(ctx)
		if err != nil {
			return nil, ErrInternal
		}
		return list, nil
	}

	st := hiring.CandidateStatus(status)
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}
	list, err := s.candidates.ListByStatus(ctx, st)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

// SetCandidateStatus validates enum membership only. Any status can be set
// from any other: HR can always override the implied applied -> screening ->
// interview -> offered -> hired progression.
func (s *Hiring) SetCandidateStatus(ctx context.Context, id uuid.UUID, status hiring.CandidateStatus) (hiring.Candidate, error) {
	if !status.Valid() {
		return hiring.Candidate{}, ErrInvalidStatus
	}

	if err := s.candidates.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, hiring.ErrCandidateNotFound) {
			return hiring.Candidate{}, ErrNotFound
		}
		return hiring.Candidate{}, ErrInternal
	}

	c, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		return hiring.Candidate{}, ErrInternal
	}
	return c, nil
}

// AnalyzeResume runs the screening engine over raw resume text and persists
// the derived fields onto the candidate. Fields are written once per call;
// there is no automatic re-analysis if the resume changes later.
func (s *Hiring) AnalyzeResume(ctx context.Context, id uuid.UUID, resumeText string) (screening.Analysis, error) {
	if strings.TrimSpace(resumeText) == "" {
		return screening.Analysis{}, ErrEmptyResume
	}

	if _, err := s.candidates.GetByID(ctx, id); err != nil {
		if errors.Is(err, hiring.ErrCandidateNotFound) {
			return screening.Analysis{}, ErrNotFound
		}
		return screening.Analysis{}, ErrInternal
	}

	analysis := screening.Analyze(resumeText)

	err := s.candidates.SetAnalysis(ctx, id, hiring.AnalysisFields{
		Skills:     analysis.Skills,
		Experience: analysis.Experience,
		Education:  analysis.Education,
		AIScore:    analysis.AIScore,
	})
	if err != nil {
		return screening.Analysis{}, ErrInternal
	}

	return analysis, nil
}

func (s *Hiring) ScheduleInterview(ctx context.Context, in ScheduleInterviewInput) (hiring.Interview, error) {
	if in.CandidateID == uuid.Nil || in.InterviewerID == uuid.Nil || in.ScheduledAt.IsZero() {
		return hiring.Interview{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Position) == "" {
		return hiring.Interview{}, ErrInvalidInput
	}

	c, err := s.candidates.GetByID(ctx, in.CandidateID)
	if err != nil {
		if errors.Is(err, hiring.ErrCandidateNotFound) {
			return hiring.Interview{}, ErrNotFound
		}
		return hiring.Interview{}, ErrInternal
	}

	iv := hiring.Interview{
		ID:            uuid.New(),
		CandidateID:   in.CandidateID,
		InterviewerID: in.InterviewerID,
		Position:      strings.TrimSpace(in.Position),
		ScheduledAt:   in.ScheduledAt.UTC(),
		Status:        hiring.InterviewScheduled,
		MeetingLink:   in.MeetingLink,
	}
	if err := s.interviews.Create(ctx, iv); err != nil {
		return hiring.Interview{}, ErrInternal
	}

	s.notifier.Notify(ctx, in.InterviewerID,
		"Interview scheduled",
		fmt.Sprintf("Interview with %s %s for %s on %s.",
			c.FirstName, c.LastName, iv.Position, iv.ScheduledAt.Format(time.RFC1123)),
		notification.TypeInfo,
	)

	return iv, nil
}

func (s *Hiring) ListInterviews(ctx context.Context) ([]hiring.Interview, error) {
	list, err := s.interviews.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (s *Hiring) ListInterviewsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]hiring.Interview, error) {
	list, err := s.interviews.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (s *Hiring) CompleteInterview(ctx context.Context, id uuid.UUID, feedback string, rating int) (hiring.Interview, error) {
	if rating < 1 || rating > 5 {
		return hiring.Interview{}, ErrInvalidRating
	}

	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hiring.ErrInterviewNotFound) {
			return hiring.Interview{}, ErrNotFound
		}
		return hiring.Interview{}, ErrInternal
	}
	if iv.Terminal() {
		return hiring.Interview{}, ErrInterviewDone
	}

	if err := s.interviews.Complete(ctx, id, feedback, rating); err != nil {
		return hiring.Interview{}, ErrInternal
	}

	iv.Status = hiring.InterviewCompleted
	iv.Feedback = &feedback
	iv.Rating = &rating
	return iv, nil
}

func (s *Hiring) CancelInterview(ctx context.Context, id uuid.UUID) (hiring.Interview, error) {
	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hiring.ErrInterviewNotFound) {
			return hiring.Interview{}, ErrNotFound
		}
		return hiring.Interview{}, ErrInternal
	}
	if iv.Terminal() {
		return hiring.Interview{}, ErrInterviewDone
	}

	if err := s.interviews.Cancel(ctx, id); err != nil {
		return hiring.Interview{}, ErrInternal
	}

	iv.Status = hiring.InterviewCancelled
	return iv, nil
}
