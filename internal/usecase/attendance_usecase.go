package usecase

import (
	"context"
	"errors"
	"time"

	"hr360/internal/domain/attendance"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrAlreadyClockedOut = errors.New("already clocked out today")
	ErrNotClockedIn      = errors.New("no clock-in record found for today")
)

// Clock-ins after this hour are recorded as late.
const lateAfterHour = 9

type AttendanceUsecase interface {
	ClockIn(ctx context.Context, userID uuid.UUID) (attendance.Record, error)
	ClockOut(ctx context.Context, userID uuid.UUID) (attendance.Record, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]attendance.Record, error)
	ListAll(ctx context.Context) ([]attendance.Record, error)
}

type Attendance struct {
	repo attendance.Repository
	now  func() time.Time
}

func NewAttendanceUsecase(repo attendance.Repository) *Attendance {
	return &Attendance{repo: repo, now: time.Now}
}

func (s *Attendance) ClockIn(ctx context.Context, userID uuid.UUID) (attendance.Record, error) {
	now := s.now()
	today := now.Format("2006-01-02")

	_, err := s.repo.GetByUserAndDate(ctx, userID, today)
	if err == nil {
		return attendance.Record{}, ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrNotFound) {
		return attendance.Record{}, ErrInternal
	}

	status := attendance.StatusPresent
	if now.Hour() > lateAfterHour {
		status = attendance.StatusLate
	}

	rec := attendance.Record{
		ID:      uuid.New(),
		UserID:  userID,
		Date:    today,
		ClockIn: now.Format("15:04"),
		Status:  status,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return attendance.Record{}, ErrInternal
	}
	return rec, nil
}

func (s *Attendance) ClockOut(ctx context.Context, userID uuid.UUID) (attendance.Record, error) {
	now := s.now()
	today := now.Format("2006-01-02")

	rec, err := s.repo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrNotFound) {
			return attendance.Record{}, ErrNotClockedIn
		}
		return attendance.Record{}, ErrInternal
	}
	if rec.ClockOut != nil {
		return attendance.Record{}, ErrAlreadyClockedOut
	}

	clockOut := now.Format("15:04")
	hours, err := hoursBetween(rec.ClockIn, clockOut)
	if err != nil {
		return attendance.Record{}, ErrInternal
	}

	if err := s.repo.SetClockOut(ctx, rec.ID, clockOut, hours); err != nil {
		return attendance.Record{}, ErrInternal
	}

	rec.ClockOut = &clockOut
	rec.HoursWorked = &hours
	return rec, nil
}

func (s *Attendance) ListForUser(ctx context.Context, userID uuid.UUID) ([]attendance.Record, error) {
	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return recs, nil
}

func (s *Attendance) ListAll(ctx context.Context) ([]attendance.Record, error) {
	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return recs, nil
}

// hoursBetween computes the fractional hours between two HH:MM wall-clock
// times on the same day.
func hoursBetween(in, out string) (float64, error) {
	tIn, err := time.Parse("15:04", in)
	if err != nil {
		return 0, err
	}
	tOut, err := time.Parse("15:04", out)
	if err != nil {
		return 0, err
	}
	return tOut.Sub(tIn).Hours(), nil
}
