package postgres

import (
	"context"
	"time"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/repository"
	"forthecos/internal/errors"
	"forthecos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type apiLogRepository struct {
	db *gorm.DB
}

// NewAPILogRepository is the constructor for apiLogRepository.
func NewAPILogRepository(db *gorm.DB) repository.APILogRepository {
	return &apiLogRepository{db: db}
}

func (repo *apiLogRepository) Create(ctx context.Context, log *entity.APILog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(fromAPILogDomain(log)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record api log")
	}

	return nil
}

func (repo *apiLogRepository) List(ctx context.Context, limit int) ([]*entity.APILog, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.APILogModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list api logs")
	}

	out := make([]*entity.APILog, 0, len(rows))
	for i := range rows {
		out = append(out, toAPILogDomain(&rows[i]))
	}

	return out, nil
}

func (repo *apiLogRepository) Clear(ctx context.Context) error {
	err := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.APILogModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear api logs")
	}

	return nil
}

func (repo *apiLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.APILogModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to prune api logs")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toAPILogDomain(data *model.APILogModel) *entity.APILog {
	return &entity.APILog{
		ID:          data.ID,
		CreatedAt:   data.CreatedAt,
		UserID:      data.UserID,
		UserSession: data.UserSession,
		Model:       data.Model,
		Category:    data.Category,
		Subcategory: data.Subcategory,
		Cost:        data.Cost,
		Status:      data.Status,
	}
}

func fromAPILogDomain(data *entity.APILog) *model.APILogModel {
	return &model.APILogModel{
		ID:          data.ID,
		UserID:      data.UserID,
		UserSession: data.UserSession,
		Model:       data.Model,
		Category:    data.Category,
		Subcategory: data.Subcategory,
		Cost:        data.Cost,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
	}
}
