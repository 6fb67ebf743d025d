package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"hr360/internal/domain/leave"
	"hr360/internal/domain/notification"

	"github.com/google/uuid"
)

type mockLeaveRepo struct {
	requests map[uuid.UUID]leave.Request
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{requests: make(map[uuid.UUID]leave.Request)}
}

func (m *mockLeaveRepo) Create(_ context.Context, r leave.Request) error {
	m.requests[r.ID] = r
	return nil
}

func (m *mockLeaveRepo) GetByID(_ context.Context, id uuid.UUID) (leave.Request, error) {
	r, ok := m.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrNotFound
	}
	return r, nil
}

func (m *mockLeaveRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range m.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockLeaveRepo) ListAll(context.Context) ([]leave.Request, error) {
	out := make([]leave.Request, 0, len(m.requests))
	for _, r := range m.requests {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockLeaveRepo) SetStatus(_ context.Context, id uuid.UUID, status leave.Status, approvedBy uuid.UUID) error {
	r, ok := m.requests[id]
	if !ok {
		return leave.ErrNotFound
	}
	r.Status = status
	r.ApprovedBy = &approvedBy
	m.requests[id] = r
	return nil
}

func (m *mockLeaveRepo) CountByStatus(_ context.Context, status leave.Status) (int, error) {
	n := 0
	for _, r := range m.requests {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

type mockNotificationRepo struct {
	created []notification.Notification
}

func (m *mockNotificationRepo) Create(_ context.Context, n notification.Notification) error {
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationRepo) ListByUser(context.Context, uuid.UUID) ([]notification.Notification, error) {
	return nil, nil
}
func (m *mockNotificationRepo) MarkRead(context.Context, uuid.UUID) error { return nil }
func (m *mockNotificationRepo) MarkAllRead(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func testNotifier(repo notification.Repository) *Notifier {
	return NewNotifier(repo, nil, log.New(io.Discard, "", 0))
}

func TestLeaveCreateRequest(t *testing.T) {
	repo := newMockLeaveRepo()
	uc := NewLeaveUsecase(repo, nil)

	req, err := uc.CreateRequest(context.Background(), uuid.New(), CreateLeaveInput{
		Type:      leave.TypeVacation,
		StartDate: "2025-04-01",
		EndDate:   "2025-04-05",
		Reason:    "family trip",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if req.Status != leave.StatusPending {
		t.Fatalf("status = %q, want pending", req.Status)
	}
	if _, ok := repo.requests[req.ID]; !ok {
		t.Fatal("request not persisted")
	}
}

func TestLeaveCreateRequest_Invalid(t *testing.T) {
	uc := NewLeaveUsecase(newMockLeaveRepo(), nil)

	cases := []struct {
		name string
		in   CreateLeaveInput
	}{
		{"unknown type", CreateLeaveInput{Type: "sabbatical", StartDate: "2025-04-01", EndDate: "2025-04-05", Reason: "x"}},
		{"bad start date", CreateLeaveInput{Type: leave.TypeSick, StartDate: "01/04/2025", EndDate: "2025-04-05", Reason: "x"}},
		{"end before start", CreateLeaveInput{Type: leave.TypeSick, StartDate: "2025-04-05", EndDate: "2025-04-01", Reason: "x"}},
		{"empty reason", CreateLeaveInput{Type: leave.TypeSick, StartDate: "2025-04-01", EndDate: "2025-04-05", Reason: "  "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.CreateRequest(context.Background(), uuid.New(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestLeaveDecide_ApproveNotifiesRequester(t *testing.T) {
	repo := newMockLeaveRepo()
	notifRepo := &mockNotificationRepo{}
	uc := NewLeaveUsecase(repo, testNotifier(notifRepo))

	userID := uuid.New()
	req := leave.Request{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      leave.TypeSick,
		StartDate: "2025-04-01",
		EndDate:   "2025-04-02",
		Reason:    "flu",
		Status:    leave.StatusPending,
	}
	repo.requests[req.ID] = req

	approver := uuid.New()
	got, err := uc.Decide(context.Background(), req.ID, true, approver)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != leave.StatusApproved {
		t.Fatalf("status = %q, want approved", got.Status)
	}
	if got.ApprovedBy == nil || *got.ApprovedBy != approver {
		t.Fatalf("approved_by = %v, want %s", got.ApprovedBy, approver)
	}

	if len(notifRepo.created) != 1 {
		t.Fatalf("notifications created = %d, want 1", len(notifRepo.created))
	}
	n := notifRepo.created[0]
	if n.UserID != userID {
		t.Fatalf("notification sent to %s, want requester %s", n.UserID, userID)
	}
	if n.Type != notification.TypeSuccess {
		t.Fatalf("notification type = %q, want success", n.Type)
	}
}

func TestLeaveDecide_RejectUsesWarning(t *testing.T) {
	repo := newMockLeaveRepo()
	notifRepo := &mockNotificationRepo{}
	uc := NewLeaveUsecase(repo, testNotifier(notifRepo))

	req := leave.Request{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Type:   leave.TypePersonal,
		Status: leave.StatusPending,
	}
	repo.requests[req.ID] = req

	got, err := uc.Decide(context.Background(), req.ID, false, uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != leave.StatusRejected {
		t.Fatalf("status = %q, want rejected", got.Status)
	}
	if len(notifRepo.created) != 1 || notifRepo.created[0].Type != notification.TypeWarning {
		t.Fatalf("notifications = %+v", notifRepo.created)
	}
}

func TestLeaveDecide_AlreadyDecided(t *testing.T) {
	repo := newMockLeaveRepo()
	uc := NewLeaveUsecase(repo, nil)

	req := leave.Request{ID: uuid.New(), UserID: uuid.New(), Status: leave.StatusApproved}
	repo.requests[req.ID] = req

	if _, err := uc.Decide(context.Background(), req.ID, false, uuid.New()); !errors.Is(err, ErrLeaveAlreadyDecided) {
		t.Fatalf("expected ErrLeaveAlreadyDecided, got %v", err)
	}
}

func TestLeaveDecide_NotFound(t *testing.T) {
	uc := NewLeaveUsecase(newMockLeaveRepo(), nil)

	if _, err := uc.Decide(context.Background(), uuid.New(), true, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
