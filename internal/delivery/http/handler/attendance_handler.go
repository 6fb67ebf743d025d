package handler

import (
	"errors"

	"hr360/internal/delivery/http/middleware"
	"hr360/internal/pkg/response"
	"hr360/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AttendanceHandler struct {
	uc usecase.AttendanceUsecase
}

func NewAttendanceHandler(uc usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

func (h *AttendanceHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/clock-in", h.ClockIn)
	r.Post("/clock-out", h.ClockOut)
	r.Get("/me", h.ListMine)
	r.Get("/", h.ListAll, auth.RequireRoles("admin", "hr"))
}

func (h *AttendanceHandler) ClockIn(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	rec, err := h.uc.ClockIn(c.Context(), userID)
	if err != nil {
		return mapAttendanceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, rec)
}

func (h *AttendanceHandler) ClockOut(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	rec, err := h.uc.ClockOut(c.Context(), userID)
	if err != nil {
		return mapAttendanceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rec)
}

func (h *AttendanceHandler) ListMine(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	recs, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return mapAttendanceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, recs)
}

func (h *AttendanceHandler) ListAll(c fiber.Ctx) error {
	recs, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapAttendanceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, recs)
}

func mapAttendanceUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrAlreadyClockedIn):
		return middleware.NewAppError(fiber.StatusConflict, "Already clocked in today", nil, err)
	case errors.Is(err, usecase.ErrAlreadyClockedOut):
		return middleware.NewAppError(fiber.StatusConflict, "Already clocked out today", nil, err)
	case errors.Is(err, usecase.ErrNotClockedIn):
		return middleware.NewAppError(fiber.StatusConflict, "Not clocked in today", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
