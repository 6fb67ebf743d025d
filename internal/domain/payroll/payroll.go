package payroll

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessed, StatusPaid:
		return true
	}
	return false
}

var ErrNotFound = errors.New("payroll record not found")

type Record struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Month      string    `json:"month"`
	Year       int       `json:"year"`
	BaseSalary float64   `json:"base_salary"`
	Allowances float64   `json:"allowances"`
	Deductions float64   `json:"deductions"`
	NetSalary  float64   `json:"net_salary"`
	Status     Status    `json:"status"`
}

type Repository interface {
	Create(ctx context.Context, r Record) error
	GetByID(ctx context.Context, id uuid.UUID) (Record, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Record, error)
	ListAll(ctx context.Context) ([]Record, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	SumNetByStatus(ctx context.Context, status Status) (float64, error)
}
