package handler

import (
	"time"

	"hr360/internal/delivery/http/middleware"
	"hr360/internal/pkg/response"
	"hr360/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type InterviewHandler struct {
	uc usecase.HiringUsecase
}

type scheduleInterviewRequest struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	InterviewerID uuid.UUID `json:"interviewer_id"`
	Position      string    `json:"position"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	MeetingLink   *string   `json:"meeting_link,omitempty"`
}

type completeInterviewRequest struct {
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating"`
}

func NewInterviewHandler(uc usecase.HiringUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Schedule)
	r.Put("/:id/complete", h.Complete)
	r.Put("/:id/cancel", h.Cancel)
}

func (h *InterviewHandler) List(c fiber.Ctx) error {
	list, err := h.uc.ListInterviews(c.Context())
	if err != nil {
		return mapHiringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *InterviewHandler) Schedule(c fiber.Ctx) error {
	var req scheduleInterviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	iv, err := h.uc.ScheduleInterview(c.Context(), usecase.ScheduleInterviewInput{
		CandidateID:   req.CandidateID,
		InterviewerID: req.InterviewerID,
		Position:      req.Position,
		ScheduledAt:   req.ScheduledAt,
		MeetingLink:   req.MeetingLink,
	})
	if err != nil {
		return mapHiringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, iv)
}

func (h *InterviewHandler) Complete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req completeInterviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	iv, err := h.uc.CompleteInterview(c.Context(), id, req.Feedback, req.Rating)
	if err != nil {
		return mapHiringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, iv)
}

func (h *InterviewHandler) Cancel(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	iv, err := h.uc.CancelInterview(c.Context(), id)
	if err != nil {
		return mapHiringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, iv)
}
