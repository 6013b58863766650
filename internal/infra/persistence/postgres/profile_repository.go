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
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).Where("id = ?", userID).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// Upsert inserts the profile or overwrites its editable columns.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)
	profileM.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "display_name", "avatar_url", "socials", "updated_at"}),
		}).
		Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profileM.CreatedAt
	}

	return nil
}

// profilesByID loads the profiles for a set of users in one query.
func profilesByID(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]*entity.UserProfile, error) {
	out := make(map[uuid.UUID]*entity.UserProfile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []model.ProfileModel
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load profiles")
	}
	for i := range rows {
		out[rows[i].ID] = toProfileDomain(&rows[i])
	}

	return out, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		ID:          data.ID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		AvatarURL:   data.AvatarURL,
		Socials:     data.Socials.Data(),
		CreatedAt:   data.CreatedAt,
	}
}

func fromProfileDomain(data *entity.UserProfile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:          data.ID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		AvatarURL:   data.AvatarURL,
		Socials:     datatypes.NewJSONType(data.Socials),
		CreatedAt:   data.CreatedAt,
	}
}
