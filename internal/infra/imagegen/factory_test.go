package imagegen

import (
	"context"
	"log/slog"
	"testing"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/service"
	"forthecos/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	creds Credentials
	opts  Options
}

func (s *stubGenerator) Generate(context.Context, service.GenerateRequest) (*service.GeneratedImage, error) {
	return &service.GeneratedImage{Model: s.opts.Model}, nil
}

func newCountingFactory(defaults Credentials) (*Factory, *int) {
	builds := 0
	f := newFactory(defaults, Options{Model: DefaultModel}, newDiscardLogger(),
		func(creds Credentials, opts Options, _ *slog.Logger) service.ImageGenerator {
			builds++

			return &stubGenerator{creds: creds, opts: opts}
		})

	return f, &builds
}

func TestFactory_MemoizesByCredentials(t *testing.T) {
	f, builds := newCountingFactory(Credentials{Endpoint: "https://a.example.com", APIKey: "env-key"})
	settings := entity.DefaultAdminSettings()

	first, err := f.Generator(settings)
	require.NoError(t, err)
	second, err := f.Generator(settings)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, *builds)

	settings.GenerationAPIKey = "admin-key"
	third, err := f.Generator(settings)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, *builds)

	stub, ok := third.(*stubGenerator)
	require.True(t, ok)
	assert.Equal(t, "admin-key", stub.creds.APIKey)
	assert.Equal(t, "https://a.example.com", stub.creds.Endpoint)
}

func TestFactory_ModelOverrideRebuilds(t *testing.T) {
	f, builds := newCountingFactory(Credentials{APIKey: "env-key"})
	settings := entity.DefaultAdminSettings()

	_, err := f.Generator(settings)
	require.NoError(t, err)

	settings.GenerationModel = "gemini-3-pro-image"
	gen, err := f.Generator(settings)
	require.NoError(t, err)
	assert.Equal(t, 2, *builds)

	img, err := gen.Generate(context.Background(), service.GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "gemini-3-pro-image", img.Model)
}

func TestFactory_Invalidate(t *testing.T) {
	f, builds := newCountingFactory(Credentials{APIKey: "env-key"})
	settings := entity.DefaultAdminSettings()

	_, err := f.Generator(settings)
	require.NoError(t, err)
	f.Invalidate()
	_, err = f.Generator(settings)
	require.NoError(t, err)

	assert.Equal(t, 2, *builds)
}

func TestFactory_MissingKey(t *testing.T) {
	f, builds := newCountingFactory(Credentials{})

	_, err := f.Generator(entity.DefaultAdminSettings())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBackendMisconfigured))
	assert.Zero(t, *builds)
}
