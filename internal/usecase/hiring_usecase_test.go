package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr360/internal/domain/hiring"

	"github.com/google/uuid"
)

type mockCandidateRepo struct {
	candidates map[uuid.UUID]hiring.Candidate
}

func newMockCandidateRepo() *mockCandidateRepo {
	return &mockCandidateRepo{candidates: make(map[uuid.UUID]hiring.Candidate)}
}

func (m *mockCandidateRepo) Create(_ context.Context, c hiring.Candidate) error {
	m.candidates[c.ID] = c
	return nil
}

func (m *mockCandidateRepo) GetByID(_ context.Context, id uuid.UUID) (hiring.Candidate, error) {
	c, ok := m.candidates[id]
	if !ok {
		return hiring.Candidate{}, hiring.ErrCandidateNotFound
	}
	return c, nil
}

func (m *mockCandidateRepo) List(context.Context) ([]hiring.Candidate, error) {
	out := make([]hiring.Candidate, 0, len(m.candidates))
	for _, c := range m.candidates {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCandidateRepo) ListByStatus(_ context.Context, status hiring.CandidateStatus) ([]hiring.Candidate, error) {
	var out []hiring.Candidate
	for _, c := range m.candidates {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCandidateRepo) SetStatus(_ context.Context, id uuid.UUID, status hiring.CandidateStatus) error {
	c, ok := m.candidates[id]
	if !ok {
		return hiring.ErrCandidateNotFound
	}
	c.Status = status
	m.candidates[id] = c
	return nil
}

func (m *mockCandidateRepo) SetAnalysis(_ context.Context, id uuid.UUID, f hiring.AnalysisFields) error {
	c, ok := m.candidates[id]
	if !ok {
		return hiring.ErrCandidateNotFound
	}
	c.Skills = f.Skills
	c.Experience = &f.Experience
	c.Education = &f.Education
	c.AIScore = &f.AIScore
	m.candidates[id] = c
	return nil
}

func (m *mockCandidateRepo) CountByStatus(_ context.Context, status hiring.CandidateStatus) (int, error) {
	n := 0
	for _, c := range m.candidates {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

type mockInterviewRepo struct {
	interviews map[uuid.UUID]hiring.Interview
}

func newMockInterviewRepo() *mockInterviewRepo {
	return &mockInterviewRepo{interviews: make(map[uuid.UUID]hiring.Interview)}
}

func (m *mockInterviewRepo) Create(_ context.Context, iv hiring.Interview) error {
	m.interviews[iv.ID] = iv
	return nil
}

func (m *mockInterviewRepo) GetByID(_ context.Context, id uuid.UUID) (hiring.Interview, error) {
	iv, ok := m.interviews[id]
	if !ok {
		return hiring.Interview{}, hiring.ErrInterviewNotFound
	}
	return iv, nil
}

func (m *mockInterviewRepo) ListAll(context.Context) ([]hiring.Interview, error) {
	out := make([]hiring.Interview, 0, len(m.interviews))
	for _, iv := range m.interviews {
		out = append(out, iv)
	}
	return out, nil
}

func (m *mockInterviewRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]hiring.Interview, error) {
	var out []hiring.Interview
	for _, iv := range m.interviews {
		if iv.CandidateID == candidateID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (m *mockInterviewRepo) Complete(_ context.Context, id uuid.UUID, feedback string, rating int) error {
	iv, ok := m.interviews[id]
	if !ok {
		return hiring.ErrInterviewNotFound
	}
	iv.Status = hiring.InterviewCompleted
	iv.Feedback = &feedback
	iv.Rating = &rating
	m.interviews[id] = iv
	return nil
}

func (m *mockInterviewRepo) Cancel(_ context.Context, id uuid.UUID) error {
	iv, ok := m.interviews[id]
	if !ok {
		return hiring.ErrInterviewNotFound
	}
	iv.Status = hiring.InterviewCancelled
	m.interviews[id] = iv
	return nil
}

func newHiringFixture() (*Hiring, *mockCandidateRepo, *mockInterviewRepo) {
	candidates := newMockCandidateRepo()
	interviews := newMockInterviewRepo()
	return NewHiringUsecase(candidates, interviews, nil), candidates, interviews
}

func seedCandidate(repo *mockCandidateRepo, status hiring.CandidateStatus) hiring.Candidate {
	c := hiring.Candidate{
		ID:        uuid.New(),
		FirstName: "Sari",
		LastName:  "Wijaya",
		Email:     "sari@example.com",
		Position:  "Backend Engineer",
		Status:    status,
		AppliedAt: "2025-03-01",
	}
	repo.candidates[c.ID] = c
	return c
}

func TestHiringCreateCandidate(t *testing.T) {
	uc, _, _ := newHiringFixture()

	c, err := uc.CreateCandidate(context.Background(), CreateCandidateInput{
		FirstName: "  Sari ",
		LastName:  "Wijaya",
		Email:     "Sari@Example.com",
		Position:  "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Status != hiring.StatusApplied {
		t.Fatalf("status = %q, want applied", c.Status)
	}
	if c.Email != "sari@example.com" {
		t.Fatalf("email = %q, want lowercased", c.Email)
	}
	if c.FirstName != "Sari" {
		t.Fatalf("first_name = %q, want trimmed", c.FirstName)
	}
}

func TestHiringCreateCandidate_MissingFields(t *testing.T) {
	uc, _, _ := newHiringFixture()

	_, err := uc.CreateCandidate(context.Background(), CreateCandidateInput{
		FirstName: "Sari",
		Email:     "sari@example.com",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHiringSetCandidateStatus_AnyTransitionAllowed(t *testing.T) {
	uc, candidates, _ := newHiringFixture()
	c := seedCandidate(candidates, hiring.StatusScreening)

	// HR can move a candidate to any valid status, including straight to
	// rejected without an interview.
	got, err := uc.SetCandidateStatus(context.Background(), c.ID, hiring.StatusRejected)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != hiring.StatusRejected {
		t.Fatalf("status = %q, want rejected", got.Status)
	}

	got, err = uc.SetCandidateStatus(context.Background(), c.ID, hiring.StatusHired)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != hiring.StatusHired {
		t.Fatalf("status = %q, want hired", got.Status)
	}
}

func TestHiringSetCandidateStatus_Invalid(t *testing.T) {
	uc, candidates, _ := newHiringFixture()
	c := seedCandidate(candidates, hiring.StatusApplied)

	if _, err := uc.SetCandidateStatus(context.Background(), c.ID, "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestHiringSetCandidateStatus_NotFound(t *testing.T) {
	uc, _, _ := newHiringFixture()

	if _, err := uc.SetCandidateStatus(context.Background(), uuid.New(), hiring.StatusHired); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHiringAnalyzeResume_PersistsFields(t *testing.T) {
	uc, candidates, _ := newHiringFixture()
	c := seedCandidate(candidates, hiring.StatusApplied)

	resume := "Senior engineer with 6 years of experience building Go and PostgreSQL services. Master of Computer Science."
	analysis, err := uc.AnalyzeResume(context.Background(), c.ID, resume)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if analysis.AIScore < 50 || analysis.AIScore > 100 {
		t.Fatalf("score %d out of range", analysis.AIScore)
	}

	stored := candidates.candidates[c.ID]
	if stored.AIScore == nil || *stored.AIScore != analysis.AIScore {
		t.Fatalf("stored score = %v, want %d", stored.AIScore, analysis.AIScore)
	}
	if stored.Experience == nil || *stored.Experience != "6 years of professional experience" {
		t.Fatalf("stored experience = %v", stored.Experience)
	}
	if len(stored.Skills) == 0 {
		t.Fatal("expected stored skills")
	}
}

func TestHiringAnalyzeResume_EmptyText(t *testing.T) {
	uc, candidates, _ := newHiringFixture()
	c := seedCandidate(candidates, hiring.StatusApplied)

	if _, err := uc.AnalyzeResume(context.Background(), c.ID, "   "); !errors.Is(err, ErrEmptyResume) {
		t.Fatalf("expected ErrEmptyResume, got %v", err)
	}
}

func TestHiringScheduleInterview(t *testing.T) {
	uc, candidates, interviews := newHiringFixture()
	c := seedCandidate(candidates, hiring.StatusInterview)

	iv, err := uc.ScheduleInterview(context.Background(), ScheduleInterviewInput{
		CandidateID:   c.ID,
		InterviewerID: uuid.New(),
		Position:      c.Position,
		ScheduledAt:   time.Date(2025, 3, 20, 14, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if iv.Status != hiring.InterviewScheduled {
		t.Fatalf("status = %q, want scheduled", iv.Status)
	}
	if _, ok := interviews.interviews[iv.ID]; !ok {
		t.Fatal("interview not persisted")
	}
}

func TestHiringScheduleInterview_UnknownCandidate(t *testing.T) {
	uc, _, _ := newHiringFixture()

	_, err := uc.ScheduleInterview(context.Background(), ScheduleInterviewInput{
		CandidateID:   uuid.New(),
		InterviewerID: uuid.New(),
		Position:      "Backend Engineer",
		ScheduledAt:   time.Date(2025, 3, 20, 14, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHiringCompleteInterview(t *testing.T) {
	uc, candidates, interviews := newHiringFixture()
	c := seedCandidate(candidates, hiring.StatusInterview)

	iv := hiring.Interview{
		ID:          uuid.New(),
		CandidateID: c.ID,
		Status:      hiring.InterviewScheduled,
	}
	interviews.interviews[iv.ID] = iv

	got, err := uc.CompleteInterview(context.Background(), iv.ID, "strong on systems design", 4)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != hiring.InterviewCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if got.Rating == nil || *got.Rating != 4 {
		t.Fatalf("rating = %v, want 4", got.Rating)
	}

	// Terminal interviews cannot be completed or cancelled again.
	if _, err := uc.CompleteInterview(context.Background(), iv.ID, "second pass", 5); !errors.Is(err, ErrInterviewDone) {
		t.Fatalf("expected ErrInterviewDone, got %v", err)
	}
	if _, err := uc.CancelInterview(context.Background(), iv.ID); !errors.Is(err, ErrInterviewDone) {
		t.Fatalf("expected ErrInterviewDone, got %v", err)
	}
}

func TestHiringCompleteInterview_RatingBounds(t *testing.T) {
	uc, _, interviews := newHiringFixture()

	iv := hiring.Interview{ID: uuid.New(), Status: hiring.InterviewScheduled}
	interviews.interviews[iv.ID] = iv

	for _, rating := range []int{0, 6, -1} {
		if _, err := uc.CompleteInterview(context.Background(), iv.ID, "ok", rating); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestHiringCancelInterview(t *testing.T) {
	uc, _, interviews := newHiringFixture()

	iv := hiring.Interview{ID: uuid.New(), Status: hiring.InterviewScheduled}
	interviews.interviews[iv.ID] = iv

	got, err := uc.CancelInterview(context.Background(), iv.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != hiring.InterviewCancelled {
		t.Fatalf("status = %q, want cancelled", got.Status)
	}
}

func TestHiringListCandidates_StatusFilter(t *testing.T) {
	uc, candidates, _ := newHiringFixture()
	seedCandidate(candidates, hiring.StatusApplied)
	seedCandidate(candidates, hiring.StatusHired)

	list, err := uc.ListCandidates(context.Background(), "hired")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list) != 1 || list[0].Status != hiring.StatusHired {
		t.Fatalf("filtered list = %+v", list)
	}

	if _, err := uc.ListCandidates(context.Background(), "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
