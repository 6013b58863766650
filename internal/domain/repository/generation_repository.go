package repository

import (
	"context"

	"forthecos/internal/domain/entity"
	"forthecos/internal/errors"

	"github.com/google/uuid"
)

// ErrGenerationNotFound is returned when no generation matches the query.
var ErrGenerationNotFound = errors.New("generation not found")

// GenerationRepository persists saved artifacts. Read methods fill the derived
// like fields for viewer and attach the owner's public profile.
type GenerationRepository interface {
	// Upsert inserts the generation or overwrites the row with the same ID.
	Upsert(ctx context.Context, gen *entity.Generation) error

	FindByID(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*entity.Generation, error)

	// ListByOwner returns every generation of owner, newest first.
	ListByOwner(ctx context.Context, owner uuid.UUID, viewer *uuid.UUID) ([]*entity.Generation, error)

	// ListPublicByOwner returns public generations of owner, newest first.
	ListPublicByOwner(ctx context.Context, owner uuid.UUID, viewer *uuid.UUID) ([]*entity.Generation, error)

	// ListPublic returns the community feed, newest first. A limit of zero means no limit.
	ListPublic(ctx context.Context, viewer *uuid.UUID, limit int) ([]*entity.Generation, error)

	// SetVisibility updates is_public on a generation owned by owner.
	SetVisibility(ctx context.Context, id, owner uuid.UUID, public bool) error

	// Delete removes a generation. A nil owner skips the ownership check.
	Delete(ctx context.Context, id uuid.UUID, owner *uuid.UUID) error
}

// LikeRepository persists the user-to-generation like relation.
type LikeRepository interface {
	// Add is a no-op when the like already exists.
	Add(ctx context.Context, like *entity.Like) error
	Remove(ctx context.Context, userID, generationID uuid.UUID) error
	Exists(ctx context.Context, userID, generationID uuid.UUID) (bool, error)
	Count(ctx context.Context, generationID uuid.UUID) (int, error)
}
