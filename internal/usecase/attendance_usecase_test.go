package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr360/internal/domain/attendance"

	"github.com/google/uuid"
)

type mockAttendanceRepo struct {
	records map[string]attendance.Record
	created []attendance.Record
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]attendance.Record)}
}

func attKey(userID uuid.UUID, date string) string { return userID.String() + "|" + date }

func (m *mockAttendanceRepo) Create(_ context.Context, r attendance.Record) error {
	m.records[attKey(r.UserID, r.Date)] = r
	m.created = append(m.created, r)
	return nil
}

func (m *mockAttendanceRepo) GetByUserAndDate(_ context.Context, userID uuid.UUID, date string) (attendance.Record, error) {
	r, ok := m.records[attKey(userID, date)]
	if !ok {
		return attendance.Record{}, attendance.ErrNotFound
	}
	return r, nil
}

func (m *mockAttendanceRepo) SetClockOut(_ context.Context, id uuid.UUID, clockOut string, hoursWorked float64) error {
	for k, r := range m.records {
		if r.ID == id {
			r.ClockOut = &clockOut
			r.HoursWorked = &hoursWorked
			m.records[k] = r
			return nil
		}
	}
	return attendance.ErrNotFound
}

func (m *mockAttendanceRepo) ListByUser(context.Context, uuid.UUID) ([]attendance.Record, error) {
	return nil, nil
}
func (m *mockAttendanceRepo) ListAll(context.Context) ([]attendance.Record, error) { return nil, nil }
func (m *mockAttendanceRepo) CountByDateAndStatus(context.Context, string, attendance.Status) (int, error) {
	return 0, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAttendanceClockIn_Present(t *testing.T) {
	repo := newMockAttendanceRepo()
	uc := NewAttendanceUsecase(repo)
	uc.now = fixedClock(time.Date(2025, 3, 10, 8, 45, 0, 0, time.UTC))

	rec, err := uc.ClockIn(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.Status != attendance.StatusPresent {
		t.Fatalf("status = %q, want present", rec.Status)
	}
	if rec.ClockIn != "08:45" {
		t.Fatalf("clock_in = %q", rec.ClockIn)
	}
	if rec.Date != "2025-03-10" {
		t.Fatalf("date = %q", rec.Date)
	}
}

func TestAttendanceClockIn_LateAfterNine(t *testing.T) {
	repo := newMockAttendanceRepo()
	uc := NewAttendanceUsecase(repo)
	uc.now = fixedClock(time.Date(2025, 3, 10, 10, 1, 0, 0, time.UTC))

	rec, err := uc.ClockIn(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.Status != attendance.StatusLate {
		t.Fatalf("status = %q, want late", rec.Status)
	}
}

func TestAttendanceClockIn_Twice(t *testing.T) {
	repo := newMockAttendanceRepo()
	uc := NewAttendanceUsecase(repo)
	uc.now = fixedClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	userID := uuid.New()
	if _, err := uc.ClockIn(context.Background(), userID); err != nil {
		t.Fatalf("first clock-in: %v", err)
	}
	if _, err := uc.ClockIn(context.Background(), userID); !errors.Is(err, ErrAlreadyClockedIn) {
		t.Fatalf("expected ErrAlreadyClockedIn, got %v", err)
	}
}

func TestAttendanceClockOut(t *testing.T) {
	repo := newMockAttendanceRepo()
	uc := NewAttendanceUsecase(repo)

	userID := uuid.New()
	uc.now = fixedClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	if _, err := uc.ClockIn(context.Background(), userID); err != nil {
		t.Fatalf("clock-in: %v", err)
	}

	uc.now = fixedClock(time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC))
	rec, err := uc.ClockOut(context.Background(), userID)
	if err != nil {
		t.Fatalf("clock-out: %v", err)
	}
	if rec.ClockOut == nil || *rec.ClockOut != "17:30" {
		t.Fatalf("clock_out = %v", rec.ClockOut)
	}
	if rec.HoursWorked == nil || *rec.HoursWorked != 8.5 {
		t.Fatalf("hours_worked = %v", rec.HoursWorked)
	}

	if _, err := uc.ClockOut(context.Background(), userID); !errors.Is(err, ErrAlreadyClockedOut) {
		t.Fatalf("expected ErrAlreadyClockedOut, got %v", err)
	}
}

func TestAttendanceClockOut_WithoutClockIn(t *testing.T) {
	uc := NewAttendanceUsecase(newMockAttendanceRepo())
	uc.now = fixedClock(time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC))

	if _, err := uc.ClockOut(context.Background(), uuid.New()); !errors.Is(err, ErrNotClockedIn) {
		t.Fatalf("expected ErrNotClockedIn, got %v", err)
	}
}
