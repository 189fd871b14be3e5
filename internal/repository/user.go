package repository

import (
	"context"

	"github.com/google/uuid"

	"mathgate/internal/domain"
)

// UserRepository defines persistence operations for User entities.
//
// The storage layer enforces uniqueness of email and username, so a
// concurrent duplicate registration surfaces as domain.ErrUserAlreadyExists
// from Create rather than producing a silent duplicate.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
