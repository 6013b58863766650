package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "forthecos/internal/delivery/context"
	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/repository"
	"forthecos/internal/domain/service"
	"forthecos/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// redactedSecret is what Redacted shows in place of the API key. Saving it back keeps the stored key.
const redactedSecret = "********"

type settingsService struct {
	repo       repository.SettingsRepository
	generators service.ImageGeneratorProvider
	logger     *slog.Logger

	mu      sync.RWMutex
	current entity.AdminSettings
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	Lifecycle  fx.Lifecycle `optional:"true"`
	Repo       repository.SettingsRepository
	Generators service.ImageGeneratorProvider
	Logger     *slog.Logger
}

// NewSettingsService starts from defaults and loads the stored row when the app starts.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	srv := &settingsService{
		repo:       params.Repo,
		generators: params.Generators,
		logger:     params.Logger,
		current:    entity.DefaultAdminSettings(),
	}

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				_, err := srv.Load(ctx)

				return err
			},
		})
	}

	return srv
}

func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load reads the stored settings. A missing row keeps the defaults.
func (srv *settingsService) Load(ctx context.Context) (entity.AdminSettings, error) {
	stored, err := srv.repo.Load(ctx)
	if err != nil && !errors.Is(err, repository.ErrSettingsNotFound) {
		return entity.AdminSettings{}, errors.Wrap(err, "failed to load admin settings")
	}

	settings := entity.DefaultAdminSettings()
	if stored != nil {
		settings = *stored
	}

	srv.mu.Lock()
	srv.current = settings
	srv.mu.Unlock()

	srv.log(ctx).Info("Admin settings loaded", slog.Bool("stored", stored != nil))

	return settings, nil
}

// Get returns a copy of the settings in effect.
func (srv *settingsService) Get() entity.AdminSettings {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.current
}

// Save persists settings and reloads them.
func (srv *settingsService) Save(ctx context.Context, viewer usecase.Principal, settings entity.AdminSettings) (entity.AdminSettings, error) {
	if !viewer.IsAdmin() {
		return entity.AdminSettings{}, errors.Wrap(domainerrors.ErrForbidden, "admin settings require the admin role")
	}
	if settings.PriceComicPrint < 0 || settings.PriceCardSet < 0 {
		return entity.AdminSettings{}, errors.Wrap(domainerrors.ErrValidationFailed, "prices must not be negative")
	}

	if settings.GenerationAPIKey == redactedSecret {
		settings.GenerationAPIKey = srv.Get().GenerationAPIKey
	}
	settings.UpdatedAt = time.Now()

	if err := srv.repo.Save(ctx, &settings); err != nil {
		srv.log(ctx).Error("Failed to save admin settings", slog.Any("error", err))

		return entity.AdminSettings{}, errors.Wrap(err, "failed to save admin settings")
	}
	srv.log(ctx).Info("Admin settings saved", slog.Any("userID", viewer.UserID))

	return srv.Reload(ctx)
}

// Reload re-reads the stored settings and drops memoized generation clients.
func (srv *settingsService) Reload(ctx context.Context) (entity.AdminSettings, error) {
	settings, err := srv.Load(ctx)
	if err != nil {
		return entity.AdminSettings{}, err
	}
	srv.generators.Invalidate()

	return settings, nil
}
