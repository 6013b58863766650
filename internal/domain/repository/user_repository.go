package repository

import (
	"context"

	"forthecos/internal/domain/entity"
	"forthecos/internal/errors"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository persists studio accounts. Lookups return ErrUserNotFound
// for unknown ids and emails.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByEmail expects an already normalized (trimmed, lower-case) email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	// Update saves email and roles.
	Update(ctx context.Context, user *entity.User) error
}
