package repository

import (
	"context"
	"time"

	"forthecos/internal/domain/entity"
)

// APILogRepository stores the outbound generation call log.
type APILogRepository interface {
	Create(ctx context.Context, log *entity.APILog) error

	// List returns logs newest first. A limit of zero means no limit.
	List(ctx context.Context, limit int) ([]*entity.APILog, error)

	Clear(ctx context.Context) error

	// DeleteOlderThan prunes entries created before cutoff and reports how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
