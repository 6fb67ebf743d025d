package handler

import (
	"errors"

	"hr360/internal/delivery/http/middleware"
	"hr360/internal/domain/leave"
	"hr360/internal/pkg/response"
	"hr360/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type LeaveHandler struct {
	uc usecase.LeaveUsecase
}

type createLeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type decideLeaveRequest struct {
	Status string `json:"status"`
}

func NewLeaveHandler(uc usecase.LeaveUsecase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

func (h *LeaveHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/me", h.ListMine)
	r.Get("/", h.ListAll, auth.RequireRoles("admin", "hr"))
	r.Put("/:id/status", h.Decide, auth.RequireRoles("admin", "hr"))
}

func (h *LeaveHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createLeaveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateRequest(c.Context(), userID, usecase.CreateLeaveInput{
		Type:      leave.Type(req.Type),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		return mapLeaveUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *LeaveHandler) ListMine(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	reqs, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return mapLeaveUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, reqs)
}

func (h *LeaveHandler) ListAll(c fiber.Ctx) error {
	reqs, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapLeaveUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, reqs)
}

func (h *LeaveHandler) Decide(c fiber.Ctx) error {
	deciderID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req decideLeaveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var approve bool
	switch leave.Status(req.Status) {
	case leave.StatusApproved:
		approve = true
	case leave.StatusRejected:
		approve = false
	default:
		return middleware.NewAppError(fiber.StatusBadRequest, "Status must be approved or rejected", nil, nil)
	}

	decided, err := h.uc.Decide(c.Context(), id, approve, deciderID)
	if err != nil {
		return mapLeaveUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, decided)
}

func mapLeaveUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrLeaveAlreadyDecided):
		return middleware.NewAppError(fiber.StatusConflict, "Leave request already decided", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Leave request not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
