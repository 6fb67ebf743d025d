package usecase

import (
	"context"
	"errors"
	"testing"

	"hr360/internal/domain/notification"
	"hr360/internal/domain/payroll"

	"github.com/google/uuid"
)

type mockPayrollRepo struct {
	records map[uuid.UUID]payroll.Record
}

func newMockPayrollRepo() *mockPayrollRepo {
	return &mockPayrollRepo{records: make(map[uuid.UUID]payroll.Record)}
}

func (m *mockPayrollRepo) Create(_ context.Context, r payroll.Record) error {
	m.records[r.ID] = r
	return nil
}

func (m *mockPayrollRepo) GetByID(_ context.Context, id uuid.UUID) (payroll.Record, error) {
	r, ok := m.records[id]
	if !ok {
		return payroll.Record{}, payroll.ErrNotFound
	}
	return r, nil
}

func (m *mockPayrollRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]payroll.Record, error) {
	var out []payroll.Record
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockPayrollRepo) ListAll(context.Context) ([]payroll.Record, error) {
	out := make([]payroll.Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockPayrollRepo) SetStatus(_ context.Context, id uuid.UUID, status payroll.Status) error {
	r, ok := m.records[id]
	if !ok {
		return payroll.ErrNotFound
	}
	r.Status = status
	m.records[id] = r
	return nil
}

func (m *mockPayrollRepo) SumNetByStatus(_ context.Context, status payroll.Status) (float64, error) {
	var sum float64
	for _, r := range m.records {
		if r.Status == status {
			sum += r.NetSalary
		}
	}
	return sum, nil
}

func TestPayrollCreateRecord_ComputesNet(t *testing.T) {
	repo := newMockPayrollRepo()
	uc := NewPayrollUsecase(repo, nil)

	rec, err := uc.CreateRecord(context.Background(), CreatePayrollInput{
		UserID:     uuid.New(),
		Month:      "March",
		Year:       2025,
		BaseSalary: 5000,
		Allowances: 800,
		Deductions: 350,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.NetSalary != 5450 {
		t.Fatalf("net_salary = %v, want 5450", rec.NetSalary)
	}
	if rec.Status != payroll.StatusPending {
		t.Fatalf("status = %q, want pending", rec.Status)
	}
}

func TestPayrollCreateRecord_Invalid(t *testing.T) {
	uc := NewPayrollUsecase(newMockPayrollRepo(), nil)

	cases := []struct {
		name string
		in   CreatePayrollInput
	}{
		{"missing user", CreatePayrollInput{Month: "March", Year: 2025, BaseSalary: 5000}},
		{"empty month", CreatePayrollInput{UserID: uuid.New(), Year: 2025, BaseSalary: 5000}},
		{"negative base", CreatePayrollInput{UserID: uuid.New(), Month: "March", Year: 2025, BaseSalary: -1}},
		{"negative deductions", CreatePayrollInput{UserID: uuid.New(), Month: "March", Year: 2025, Deductions: -10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.CreateRecord(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPayrollSetStatus_PaidNotifies(t *testing.T) {
	repo := newMockPayrollRepo()
	notifRepo := &mockNotificationRepo{}
	uc := NewPayrollUsecase(repo, testNotifier(notifRepo))

	userID := uuid.New()
	rec := payroll.Record{ID: uuid.New(), UserID: userID, Month: "March", Year: 2025, Status: payroll.StatusProcessed}
	repo.records[rec.ID] = rec

	got, err := uc.SetStatus(context.Background(), rec.ID, payroll.StatusPaid)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != payroll.StatusPaid {
		t.Fatalf("status = %q, want paid", got.Status)
	}
	if len(notifRepo.created) != 1 {
		t.Fatalf("notifications created = %d, want 1", len(notifRepo.created))
	}
	if notifRepo.created[0].UserID != userID || notifRepo.created[0].Type != notification.TypeSuccess {
		t.Fatalf("notification = %+v", notifRepo.created[0])
	}
}

func TestPayrollSetStatus_ProcessedDoesNotNotify(t *testing.T) {
	repo := newMockPayrollRepo()
	notifRepo := &mockNotificationRepo{}
	uc := NewPayrollUsecase(repo, testNotifier(notifRepo))

	rec := payroll.Record{ID: uuid.New(), UserID: uuid.New(), Status: payroll.StatusPending}
	repo.records[rec.ID] = rec

	if _, err := uc.SetStatus(context.Background(), rec.ID, payroll.StatusProcessed); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(notifRepo.created) != 0 {
		t.Fatalf("notifications created = %d, want 0", len(notifRepo.created))
	}
}

func TestPayrollSetStatus_Invalid(t *testing.T) {
	uc := NewPayrollUsecase(newMockPayrollRepo(), nil)

	if _, err := uc.SetStatus(context.Background(), uuid.New(), "queued"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
