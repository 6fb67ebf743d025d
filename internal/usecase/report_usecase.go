package usecase

import (
	"context"
	"time"

	"hr360/internal/domain/attendance"
	"hr360/internal/domain/hiring"
	"hr360/internal/domain/leave"
	"hr360/internal/domain/payroll"
	"hr360/internal/domain/user"
)

const (
	reportSummaryKey = "reports:summary"
	reportSummaryTTL = time.Minute
)

type Summary struct {
	HeadcountByRole   map[user.Role]int              `json:"headcount_by_role"`
	PresentToday      int                            `json:"present_today"`
	LateToday         int                            `json:"late_today"`
	PendingLeaves     int                            `json:"pending_leaves"`
	PendingPayrollNet float64                        `json:"pending_payroll_net"`
	CandidatePipeline map[hiring.CandidateStatus]int `json:"candidate_pipeline"`
	GeneratedAt       time.Time                      `json:"generated_at"`
}

type ReportUsecase interface {
	Summary(ctx context.Context) (Summary, error)
}

type Reports struct {
	users      user.Repository
	attendance attendance.Repository
	leaves     leave.Repository
	payroll    payroll.Repository
	candidates hiring.CandidateRepository
	cache      Cache
	now        func() time.Time
}

func NewReportUsecase(
	users user.Repository,
	att attendance.Repository,
	leaves leave.Repository,
	pay payroll.Repository,
	candidates hiring.CandidateRepository,
	cache Cache,
) *Reports {
	return &Reports{
		users:      users,
		attendance: att,
		leaves:     leaves,
		payroll:    pay,
		candidates: candidates,
		cache:      cache,
		now:        time.Now,
	}
}

func (s *Reports) Summary(ctx context.Context) (Summary, error) {
	if s.cache != nil {
		var cached Summary
		hit, err := s.cache.GetJSON(ctx, reportSummaryKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	now := s.now().UTC()
	today := now.Format("2006-01-02")

	headcount, err := s.users.CountActiveByRole(ctx)
	if err != nil {
		return Summary{}, ErrInternal
	}

	present, err := s.attendance.CountByDateAndStatus(ctx, today, attendance.StatusPresent)
	if err != nil {
		return Summary{}, ErrInternal
	}
	late, err := s.attendance.CountByDateAndStatus(ctx, today, attendance.StatusLate)
	if err != nil {
		return Summary{}, ErrInternal
	}

	pendingLeaves, err := s.leaves.CountByStatus(ctx, leave.StatusPending)
	if err != nil {
		return Summary{}, ErrInternal
	}

	pendingNet, err := s.payroll.SumNetByStatus(ctx, payroll.StatusPending)
	if err != nil {
		return Summary{}, ErrInternal
	}

	pipeline := make(map[hiring.CandidateStatus]int)
	for _, st := range []hiring.CandidateStatus{
		hiring.StatusApplied, hiring.StatusScreening, hiring.StatusInterview,
		hiring.StatusOffered, hiring.StatusHired, hiring.StatusRejected,
	} {
		c, err := s.candidates.CountByStatus(ctx, st)
		if err != nil {
			return Summary{}, ErrInternal
		}
		pipeline[st] = c
	}

	sum := Summary{
		HeadcountByRole:   headcount,
		PresentToday:      present,
		LateToday:         late,
		PendingLeaves:     pendingLeaves,
		PendingPayrollNet: pendingNet,
		CandidatePipeline: pipeline,
		GeneratedAt:       now,
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, reportSummaryKey, sum, reportSummaryTTL)
	}

	return sum, nil
}
