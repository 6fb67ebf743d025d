package handler

import (
	"errors"

	"hr360/internal/delivery/http/middleware"
	"hr360/internal/domain/hiring"
	"hr360/internal/pkg/response"
	"hr360/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	uc usecase.HiringUsecase
}

type createCandidateRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Position  string  `json:"position"`
	ResumeURL *string `json:"resume_url,omitempty"`
}

type setCandidateStatusRequest struct {
	Status string `json:"status"`
}

type analyzeResumeRequest struct {
	ResumeText string `json:"resume_text"`
}

func NewCandidateHandler(uc usecase.HiringUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id/status", h.SetStatus)
	r.Post("/:id/analyze", h.Analyze)
	r.Get("/:id/interviews", h.ListInterviews)
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	list, err := h.uc.ListCandidates(c.Context(), c.Query("status"))
	if err != nil {
		return mapHiringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	cand, err := h.uc.GetCandidate(c.Context(), id)
	if err != nil {
		return mapHiringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cand)
}

func (h *CandidateHandler) Create(c fiber.Ctx) error {
	var req createCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	cand, err := h.uc.CreateCandidate(c.Context(), usecase.CreateCandidateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		ResumeURL: req.ResumeURL,
	})
	if err != nil {
		return mapHiringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, cand)
}

func (h *CandidateHandler) SetStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req setCandidateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	cand, err := h.uc.SetCandidateStatus(c.Context(), id, hiring.CandidateStatus(req.Status))
	if err != nil {
		return mapHiringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cand)
}

func (h *CandidateHandler) Analyze(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req analyzeResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	analysis, err := h.uc.AnalyzeResume(c.Context(), id, req.ResumeText)
	if err != nil {
		return mapHiringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, analysis)
}

func (h *CandidateHandler) ListInterviews(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	list, err := h.uc.ListInterviewsForCandidate(c.Context(), id)
	if err != nil {
		return mapHiringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func mapHiringUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status value", nil, err)
	case errors.Is(err, usecase.ErrInvalidRating):
		return middleware.NewAppError(fiber.StatusBadRequest, "Rating must be between 1 and 5", nil, err)
	case errors.Is(err, usecase.ErrEmptyResume):
		return middleware.NewAppError(fiber.StatusBadRequest, "Empty resume text", nil, err)
	case errors.Is(err, usecase.ErrInterviewDone):
		return middleware.NewAppError(fiber.StatusConflict, "Interview already completed or cancelled", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
