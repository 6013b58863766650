package usecase

import (
	"context"

	"forthecos/internal/domain/entity"

	"github.com/google/uuid"
)

// LikeOutput is the generation as the viewer should now see it.
type LikeOutput struct {
	Generation *entity.Generation
	// Reconciled is set when the write failed and Generation is a fresh read.
	Reconciled bool
}

// GenerationUsecase manages saved artifacts, the community feed and likes.
type GenerationUsecase interface {
	// Save inserts gen or overwrites the artifact with the same id.
	Save(ctx context.Context, gen *entity.Generation) error
	ListMine(ctx context.Context, viewer Principal) ([]*entity.Generation, error)
	Feed(ctx context.Context, viewer *Principal) ([]*entity.Generation, error)
	// Get returns a public artifact, or a private one to its owner or an admin.
	Get(ctx context.Context, id uuid.UUID, viewer *Principal) (*entity.Generation, error)
	ToggleVisibility(ctx context.Context, viewer Principal, id uuid.UUID) (*entity.Generation, error)
	SetVisibility(ctx context.Context, viewer Principal, id uuid.UUID, public bool) (*entity.Generation, error)
	Delete(ctx context.Context, viewer Principal, id uuid.UUID) error
	ToggleLike(ctx context.Context, viewer *Principal, id uuid.UUID) (*LikeOutput, error)
}
