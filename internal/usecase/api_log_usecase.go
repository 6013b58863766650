package usecase

import (
	"context"

	"forthecos/internal/domain/entity"
)

// APILogUsecase records generation calls and lets admins review them.
type APILogUsecase interface {
	Record(ctx context.Context, log *entity.APILog) error
	List(ctx context.Context, viewer Principal, limit int) ([]*entity.APILog, error)
	Clear(ctx context.Context, viewer Principal) error
	// Prune deletes entries older than the configured retention.
	Prune(ctx context.Context) (int64, error)
}
