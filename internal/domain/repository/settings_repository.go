package repository

import (
	"context"

	"forthecos/internal/domain/entity"
	"forthecos/internal/errors"
)

// ErrSettingsNotFound is returned when no settings have been saved yet.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository persists the single global admin settings row.
type SettingsRepository interface {
	Load(ctx context.Context) (*entity.AdminSettings, error)
	Save(ctx context.Context, settings *entity.AdminSettings) error
}
