package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type UpdateFields struct {
	FirstName  *string
	LastName   *string
	Role       *Role
	Department *string
	Position   *string
	Salary     *float64
	Phone      *string
	IsActive   *bool
}

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, f UpdateFields) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActiveByRole(ctx context.Context) (map[Role]int, error)
}
