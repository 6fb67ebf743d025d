package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hr360/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserInput struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Role       user.Role
	Department *string
	Position   *string
	Salary     *float64
	Phone      *string
}

type UpdateUserInput struct {
	FirstName  *string
	LastName   *string
	Role       *user.Role
	Department *string
	Position   *string
	Salary     *float64
	Phone      *string
	IsActive   *bool
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (user.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (user.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (user.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type Users struct {
	users user.Repository
	now   func() time.Time
}

func NewUserUsecase(users user.Repository) *Users {
	return &Users{users: users, now: time.Now}
}

func (s *Users) ListUsers(ctx context.Context) ([]user.User, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range list {
		list[i] = sanitizeUser(list[i])
	}
	return list, nil
}

func (s *Users) GetUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(u), nil
}

func (s *Users) CreateUser(ctx context.Context, in CreateUserInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) || !in.Role.Valid() {
		return user.User{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return user.User{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	joinDate := s.now().UTC().Format("2006-01-02")
	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         in.Role,
		Department:   in.Department,
		Position:     in.Position,
		Salary:       in.Salary,
		Phone:        in.Phone,
		JoinDate:     &joinDate,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(u), nil
}

func (s *Users) UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (user.User, error) {
	if in.Role != nil && !in.Role.Valid() {
		return user.User{}, ErrInvalidInput
	}

	f := user.UpdateFields{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Role:       in.Role,
		Department: in.Department,
		Position:   in.Position,
		Salary:     in.Salary,
		Phone:      in.Phone,
		IsActive:   in.IsActive,
	}

	if err := s.users.Update(ctx, id, f); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(u), nil
}

func (s *Users) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}
