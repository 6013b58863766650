package postgres

import (
	"context"
	"time"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/repository"
	"forthecos/internal/errors"
	"forthecos/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (repo *settingsRepository) Load(ctx context.Context) (*entity.AdminSettings, error) {
	var settingsM model.AdminSettingsModel
	err := repo.db.WithContext(ctx).Where("id = ?", model.GlobalSettingsID).First(&settingsM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to load settings")
	}

	return toSettingsDomain(&settingsM), nil
}

func (repo *settingsRepository) Save(ctx context.Context, settings *entity.AdminSettings) error {
	settings.UpdatedAt = time.Now()
	settingsM := fromSettingsDomain(settings)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save settings")
	}

	return nil
}

// --- Mapper Functions ---

func toSettingsDomain(data *model.AdminSettingsModel) *entity.AdminSettings {
	return &entity.AdminSettings{
		DefaultTitle:         data.DefaultTitle,
		DefaultDescription:   data.DefaultDescription,
		DefaultStatusText:    data.DefaultStatusText,
		PaymentLinkComic:     data.PaymentLinkComic,
		PaymentLinkCard:      data.PaymentLinkCard,
		PriceComicPrint:      data.PriceComicPrint,
		PriceCardSet:         data.PriceCardSet,
		AutomationWebhookURL: data.AutomationWebhookURL,
		GenerationEndpoint:   data.GenerationEndpoint,
		GenerationAPIKey:     data.GenerationAPIKey,
		GenerationModel:      data.GenerationModel,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.AdminSettings) *model.AdminSettingsModel {
	return &model.AdminSettingsModel{
		ID:                   model.GlobalSettingsID,
		DefaultTitle:         data.DefaultTitle,
		DefaultDescription:   data.DefaultDescription,
		DefaultStatusText:    data.DefaultStatusText,
		PaymentLinkComic:     data.PaymentLinkComic,
		PaymentLinkCard:      data.PaymentLinkCard,
		PriceComicPrint:      data.PriceComicPrint,
		PriceCardSet:         data.PriceCardSet,
		AutomationWebhookURL: data.AutomationWebhookURL,
		GenerationEndpoint:   data.GenerationEndpoint,
		GenerationAPIKey:     data.GenerationAPIKey,
		GenerationModel:      data.GenerationModel,
		UpdatedAt:            data.UpdatedAt,
	}
}
