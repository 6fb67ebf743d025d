package leave

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSick      Type = "sick"
	TypeVacation  Type = "vacation"
	TypePersonal  Type = "personal"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
)

func (t Type) Valid() bool {
	switch t {
	case TypeSick, TypeVacation, TypePersonal, TypeMaternity, TypePaternity:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var ErrNotFound = errors.New("leave request not found")

type Request struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Type       Type       `json:"type"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Reason     string     `json:"reason"`
	Status     Status     `json:"status"`
	ApprovedBy *uuid.UUID `json:"approved_by,omitempty"`
	AppliedAt  string     `json:"applied_at"`
}

type Repository interface {
	Create(ctx context.Context, r Request) error
	GetByID(ctx context.Context, id uuid.UUID) (Request, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Request, error)
	ListAll(ctx context.Context) ([]Request, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status, approvedBy uuid.UUID) error
	CountByStatus(ctx context.Context, status Status) (int, error)
}
