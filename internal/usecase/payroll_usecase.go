package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hr360/internal/domain/notification"
	"hr360/internal/domain/payroll"

	"github.com/google/uuid"
)

type CreatePayrollInput struct {
	UserID     uuid.UUID
	Month      string
	Year       int
	BaseSalary float64
	Allowances float64
	Deductions float64
}

type PayrollUsecase interface {
	CreateRecord(ctx context.Context, in CreatePayrollInput) (payroll.Record, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]payroll.Record, error)
	ListAll(ctx context.Context) ([]payroll.Record, error)
	SetStatus(ctx context.Context, id uuid.UUID, status payroll.Status) (payroll.Record, error)
}

type Payroll struct {
	repo     payroll.Repository
	notifier *Notifier
}

func NewPayrollUsecase(repo payroll.Repository, notifier *Notifier) *Payroll {
	return &Payroll{repo: repo, notifier: notifier}
}

func (s *Payroll) CreateRecord(ctx context.Context, in CreatePayrollInput) (payroll.Record, error) {
	if in.UserID == uuid.Nil || strings.TrimSpace(in.Month) == "" || in.Year < 2000 {
		return payroll.Record{}, ErrInvalidInput
	}
	if in.BaseSalary < 0 || in.Allowances < 0 || in.Deductions < 0 {
		return payroll.Record{}, ErrInvalidInput
	}

	rec := payroll.Record{
		ID:         uuid.New(),
		UserID:     in.UserID,
		Month:      strings.TrimSpace(in.Month),
		Year:       in.Year,
		BaseSalary: in.BaseSalary,
		Allowances: in.Allowances,
		Deductions: in.Deductions,
		NetSalary:  in.BaseSalary + in.Allowances - in.Deductions,
		Status:     payroll.StatusPending,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return payroll.Record{}, ErrInternal
	}
	return rec, nil
}

func (s *Payroll) ListForUser(ctx context.Context, userID uuid.UUID) ([]payroll.Record, error) {
	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return recs, nil
}

func (s *Payroll) ListAll(ctx context.Context) ([]payroll.Record, error) {
	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return recs, nil
}

func (s *Payroll) SetStatus(ctx context.Context, id uuid.UUID, status payroll.Status) (payroll.Record, error) {
	if !status.Valid() {
		return payroll.Record{}, ErrInvalidInput
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrNotFound) {
			return payroll.Record{}, ErrNotFound
		}
		return payroll.Record{}, ErrInternal
	}

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, payroll.ErrNotFound) {
			return payroll.Record{}, ErrNotFound
		}
		return payroll.Record{}, ErrInternal
	}
	rec.Status = status

	if status == payroll.StatusPaid {
		s.notifier.Notify(ctx, rec.UserID,
			"Salary paid",
			fmt.Sprintf("Your salary for %s %d has been paid.", rec.Month, rec.Year),
			notification.TypeSuccess,
		)
	}

	return rec, nil
}
