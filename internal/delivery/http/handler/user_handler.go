package handler

import (
	"errors"

	"hr360/internal/delivery/http/middleware"
	"hr360/internal/domain/user"
	"hr360/internal/pkg/response"
	"hr360/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type createUserRequest struct {
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Role       string   `json:"role"`
	Department *string  `json:"department,omitempty"`
	Position   *string  `json:"position,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
}

type updateUserRequest struct {
	FirstName  *string  `json:"first_name,omitempty"`
	LastName   *string  `json:"last_name,omitempty"`
	Role       *string  `json:"role,omitempty"`
	Department *string  `json:"department,omitempty"`
	Position   *string  `json:"position,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	hrOnly := auth.RequireRoles("admin", "hr")

	r.Get("/", h.List, hrOnly)
	r.Post("/", h.Create, hrOnly)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update, hrOnly)
	r.Delete("/:id", h.Delete, hrOnly)
}

func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, users)
}

// Get serves any profile to admin and hr; everyone else may only read their
// own record.
func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	role, _ := c.Locals(middleware.CtxRoleKey).(string)
	if role != string(user.RoleAdmin) && role != string(user.RoleHR) {
		callerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
		if !ok || callerID != id {
			return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
	}

	u, err := h.uc.GetUser(c.Context(), id)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, u)
}

func (h *UserHandler) Create(c fiber.Ctx) error {
	var req createUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	u, err := h.uc.CreateUser(c.Context(), usecase.CreateUserInput{
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       user.Role(req.Role),
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
		Phone:      req.Phone,
	})
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, u)
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.UpdateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
		Phone:      req.Phone,
		IsActive:   req.IsActive,
	}
	if req.Role != nil {
		role := user.Role(*req.Role)
		in.Role = &role
	}

	u, err := h.uc.UpdateUser(c.Context(), id, in)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, u)
}

func (h *UserHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteUser(c.Context(), id); err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapUserUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
