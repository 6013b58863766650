package impl

import (
	"context"
	"testing"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/repository"
	mockRepo "forthecos/internal/mocks/repository"
	mockSvc "forthecos/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settingsServiceFixtures struct {
	service    *settingsService
	repo       *mockRepo.MockSettingsRepository
	generators *mockSvc.MockImageGeneratorProvider
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	repo := mockRepo.NewMockSettingsRepository(t)
	generators := mockSvc.NewMockImageGeneratorProvider(t)

	srv := NewSettingsService(SettingsServiceParams{
		Repo:       repo,
		Generators: generators,
		Logger:     newDiscardLogger(),
	})

	return settingsServiceFixtures{
		service:    srv.(*settingsService),
		repo:       repo,
		generators: generators,
	}
}

func TestSettingsService_Load_MissingRowKeepsDefaults(t *testing.T) {
	fx := createTestSettingsService(t)

	fx.repo.EXPECT().Load(mock.Anything).Return(nil, repository.ErrSettingsNotFound)

	settings, err := fx.service.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultAdminSettings(), settings)
	assert.Equal(t, settings, fx.service.Get())
}

func TestSettingsService_Load_Error(t *testing.T) {
	fx := createTestSettingsService(t)

	fx.repo.EXPECT().Load(mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := fx.service.Load(context.Background())

	assert.ErrorContains(t, err, "failed to load admin settings")
}

func TestSettingsService_Save_RequiresAdmin(t *testing.T) {
	fx := createTestSettingsService(t)

	_, err := fx.service.Save(context.Background(), userPrincipal(), entity.DefaultAdminSettings())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSettingsService_Save_RejectsNegativePrice(t *testing.T) {
	fx := createTestSettingsService(t)

	settings := entity.DefaultAdminSettings()
	settings.PriceCardSet = -1

	_, err := fx.service.Save(context.Background(), adminPrincipal(), settings)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSettingsService_Save_KeepsStoredKeyAndInvalidatesClients(t *testing.T) {
	fx := createTestSettingsService(t)

	stored := entity.DefaultAdminSettings()
	stored.GenerationAPIKey = "real-key"
	fx.service.current = stored

	update := stored.Redacted()
	update.PaymentLinkComic = "https://pay.example.com/comic"

	var saved *entity.AdminSettings
	fx.repo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.AdminSettings")).
		Run(func(_ context.Context, s *entity.AdminSettings) { saved = s }).
		Return(nil)
	fx.repo.EXPECT().
		Load(mock.Anything).
		RunAndReturn(func(context.Context) (*entity.AdminSettings, error) { return saved, nil })
	fx.generators.EXPECT().Invalidate().Return()

	result, err := fx.service.Save(context.Background(), adminPrincipal(), update)

	require.NoError(t, err)
	assert.Equal(t, "real-key", result.GenerationAPIKey)
	assert.Equal(t, "https://pay.example.com/comic", fx.service.Get().PaymentLinkComic)
	assert.False(t, result.UpdatedAt.IsZero())
}
