package handler

import (
	"errors"

	"hr360/internal/delivery/http/middleware"
	"hr360/internal/domain/payroll"
	"hr360/internal/pkg/response"
	"hr360/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PayrollHandler struct {
	uc usecase.PayrollUsecase
}

type createPayrollRequest struct {
	UserID     uuid.UUID `json:"user_id"`
	Month      string    `json:"month"`
	Year       int       `json:"year"`
	BaseSalary float64   `json:"base_salary"`
	Allowances float64   `json:"allowances"`
	Deductions float64   `json:"deductions"`
}

type setPayrollStatusRequest struct {
	Status string `json:"status"`
}

func NewPayrollHandler(uc usecase.PayrollUsecase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

func (h *PayrollHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Get("/me", h.ListMine)
	r.Post("/", h.Create, auth.RequireRoles("admin", "hr"))
	r.Get("/", h.ListAll, auth.RequireRoles("admin", "hr"))
	r.Put("/:id/status", h.SetStatus, auth.RequireRoles("admin", "hr"))
}

func (h *PayrollHandler) Create(c fiber.Ctx) error {
	var req createPayrollRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rec, err := h.uc.CreateRecord(c.Context(), usecase.CreatePayrollInput{
		UserID:     req.UserID,
		Month:      req.Month,
		Year:       req.Year,
		BaseSalary: req.BaseSalary,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
	})
	if err != nil {
		return mapPayrollUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, rec)
}

func (h *PayrollHandler) ListMine(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	recs, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return mapPayrollUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, recs)
}

func (h *PayrollHandler) ListAll(c fiber.Ctx) error {
	recs, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapPayrollUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, recs)
}

func (h *PayrollHandler) SetStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req setPayrollStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rec, err := h.uc.SetStatus(c.Context(), id, payroll.Status(req.Status))
	if err != nil {
		return mapPayrollUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rec)
}

func mapPayrollUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Payroll record not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
