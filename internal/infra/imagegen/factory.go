package imagegen

import (
	"log/slog"
	"strings"
	"sync"

	"forthecos/config"
	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/service"

	"go.uber.org/fx"
)

// ClientConstructor builds a generator for a credential pair.
type ClientConstructor func(creds Credentials, opts Options, logger *slog.Logger) service.ImageGenerator

// Factory memoizes one client keyed by its credentials and rebuilds it when they change.
type Factory struct {
	mu       sync.Mutex
	defaults Credentials
	opts     Options
	logger   *slog.Logger
	build    ClientConstructor

	current Credentials
	model   string
	client  service.ImageGenerator
}

// FactoryParams defines the dependencies of the fx-provided factory.
type FactoryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewFactory creates a factory that falls back to the configured credentials.
func NewFactory(params FactoryParams) *Factory {
	cfg := params.Config.ImageGen

	return newFactory(
		Credentials{Endpoint: cfg.Endpoint, APIKey: cfg.APIKey},
		Options{Model: cfg.Model, AspectRatio: cfg.AspectRatio, RatePerSec: cfg.RatePerSec, Burst: cfg.Burst},
		params.Logger,
		NewGeminiClient,
	)
}

func newFactory(defaults Credentials, opts Options, logger *slog.Logger, build ClientConstructor) *Factory {
	return &Factory{defaults: defaults, opts: opts, logger: logger, build: build}
}

// Resolve merges settings overrides over configured defaults.
func (f *Factory) Resolve(settings entity.AdminSettings) Credentials {
	creds := f.defaults
	if v := strings.TrimSpace(settings.GenerationEndpoint); v != "" {
		creds.Endpoint = v
	}
	if v := strings.TrimSpace(settings.GenerationAPIKey); v != "" {
		creds.APIKey = v
	}

	return creds
}

// Generator returns the memoized client, rebuilding it if the credentials or model changed.
func (f *Factory) Generator(settings entity.AdminSettings) (service.ImageGenerator, error) {
	creds := f.Resolve(settings)
	if creds.APIKey == "" {
		return nil, domainerrors.ErrBackendMisconfigured.WithDetails("no generation API key is configured")
	}

	model := strings.TrimSpace(settings.GenerationModel)
	if model == "" {
		model = f.opts.Model
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil && f.current == creds && f.model == model {
		return f.client, nil
	}

	opts := f.opts
	opts.Model = model
	f.client = f.build(creds, opts, f.logger)
	f.current = creds
	f.model = model
	f.logger.Info("Generation client created", slog.String("endpoint", creds.Endpoint), slog.String("model", model))

	return f.client, nil
}

// Invalidate forces the next Generator call to build a fresh client.
func (f *Factory) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.client = nil
}

var _ service.ImageGeneratorProvider = (*Factory)(nil)
