package impl

import (
	"io"
	"log/slog"
	"time"

	"forthecos/config"
	"forthecos/internal/domain/entity"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      12,
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		},
		ImageGen: &config.ImageGenConfig{
			Model:        "gemini-2.5-flash-image",
			CostPerImage: 0.04,
		},
		Studio: &config.StudioConfig{
			SessionTTL:   time.Hour,
			SaveLockTTL:  time.Minute,
			PollInterval: 10 * time.Millisecond,
			FeedLimit:    20,
		},
		APILogs: &config.APILogsConfig{Retention: 30 * 24 * time.Hour},
		Admin:   &config.AdminConfig{Emails: []string{"Boss@Example.com"}},
	}
}

func userPrincipal() usecase.Principal {
	return usecase.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
}

func adminPrincipal() usecase.Principal {
	return usecase.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}
}
