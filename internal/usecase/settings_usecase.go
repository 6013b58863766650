package usecase

import (
	"context"

	"forthecos/internal/domain/entity"
)

// SettingsUsecase owns the admin settings value. Consumers receive copies.
type SettingsUsecase interface {
	// Load reads the stored settings, falling back to defaults when none exist.
	Load(ctx context.Context) (entity.AdminSettings, error)
	Get() entity.AdminSettings
	Save(ctx context.Context, viewer Principal, settings entity.AdminSettings) (entity.AdminSettings, error)
	// Reload re-reads the stored settings and drops memoized generation clients.
	Reload(ctx context.Context) (entity.AdminSettings, error)
}
