package attendance

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
)

var ErrNotFound = errors.New("attendance record not found")

// Date is YYYY-MM-DD and clock times are HH:MM wall clock, matching what the
// clients display. Hours worked is derived on clock-out.
type Record struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Date        string    `json:"date"`
	ClockIn     string    `json:"clock_in"`
	ClockOut    *string   `json:"clock_out,omitempty"`
	HoursWorked *float64  `json:"hours_worked,omitempty"`
	Status      Status    `json:"status"`
}

type Repository interface {
	Create(ctx context.Context, r Record) error
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (Record, error)
	SetClockOut(ctx context.Context, id uuid.UUID, clockOut string, hoursWorked float64) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Record, error)
	ListAll(ctx context.Context) ([]Record, error)
	CountByDateAndStatus(ctx context.Context, date string, status Status) (int, error)
}
