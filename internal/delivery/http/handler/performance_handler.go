package handler

import (
	"errors"

	"hr360/internal/delivery/http/middleware"
	"hr360/internal/pkg/response"
	"hr360/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PerformanceHandler struct {
	uc usecase.PerformanceUsecase
}

type createReviewRequest struct {
	UserID       uuid.UUID `json:"user_id"`
	Period       string    `json:"period"`
	Score        int       `json:"score"`
	Feedback     string    `json:"feedback"`
	Goals        []string  `json:"goals"`
	Achievements []string  `json:"achievements"`
}

func NewPerformanceHandler(uc usecase.PerformanceUsecase) *PerformanceHandler {
	return &PerformanceHandler{uc: uc}
}

func (h *PerformanceHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Get("/me", h.ListMine)
	r.Post("/", h.Create, auth.RequireRoles("admin", "hr"))
	r.Get("/", h.ListAll, auth.RequireRoles("admin", "hr"))
}

func (h *PerformanceHandler) Create(c fiber.Ctx) error {
	reviewerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createReviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rev, err := h.uc.CreateReview(c.Context(), reviewerID, usecase.CreateReviewInput{
		UserID:       req.UserID,
		Period:       req.Period,
		Score:        req.Score,
		Feedback:     req.Feedback,
		Goals:        req.Goals,
		Achievements: req.Achievements,
	})
	if err != nil {
		return mapPerformanceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, rev)
}

func (h *PerformanceHandler) ListMine(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	revs, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return mapPerformanceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, revs)
}

func (h *PerformanceHandler) ListAll(c fiber.Ctx) error {
	revs, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapPerformanceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, revs)
}

func mapPerformanceUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
