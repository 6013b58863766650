package repository

import (
	"context"

	"forthecos/internal/domain/entity"
	"forthecos/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user has no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists public creator profiles. A profile shares its ID with the user.
type ProfileRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// Upsert creates the profile or replaces its editable fields.
	Upsert(ctx context.Context, profile *entity.UserProfile) error
}
