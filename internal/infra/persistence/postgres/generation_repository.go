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

// generationUpsertColumns are overwritten when a save reuses an existing ID.
//
//nolint:gochecknoglobals
var generationUpsertColumns = []string{
	"image_url", "name", "category", "subcategory", "type", "stats", "description",
	"card_status_text", "source_image_url", "transforms", "comic_layout", "is_public", "updated_at",
}

type generationRepository struct {
	db *gorm.DB
}

// NewGenerationRepository is the constructor for generationRepository.
func NewGenerationRepository(db *gorm.DB) repository.GenerationRepository {
	return &generationRepository{db: db}
}

// Upsert inserts the generation or overwrites the row with the same ID.
func (repo *generationRepository) Upsert(ctx context.Context, gen *entity.Generation) error {
	if gen.ID == uuid.Nil {
		gen.ID = uuid.New()
	}
	now := time.Now()
	if gen.CreatedAt.IsZero() {
		gen.CreatedAt = now
	}
	gen.UpdatedAt = now

	genM := fromGenerationDomain(gen)
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(generationUpsertColumns),
		}).
		Create(genM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save generation")
	}

	return nil
}

func (repo *generationRepository) FindByID(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*entity.Generation, error) {
	var genM model.GenerationModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&genM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGenerationNotFound
		}

		return nil, errors.Wrap(err, "failed to find generation")
	}

	gens, err := repo.hydrate(ctx, []model.GenerationModel{genM}, viewer)
	if err != nil {
		return nil, err
	}

	return gens[0], nil
}

func (repo *generationRepository) ListByOwner(ctx context.Context, owner uuid.UUID, viewer *uuid.UUID) ([]*entity.Generation, error) {
	return repo.list(ctx, repo.db.Where("user_id = ?", owner), viewer, 0)
}

func (repo *generationRepository) ListPublicByOwner(ctx context.Context, owner uuid.UUID, viewer *uuid.UUID) ([]*entity.Generation, error) {
	return repo.list(ctx, repo.db.Where("user_id = ? AND is_public = ?", owner, true), viewer, 0)
}

func (repo *generationRepository) ListPublic(ctx context.Context, viewer *uuid.UUID, limit int) ([]*entity.Generation, error) {
	return repo.list(ctx, repo.db.Where("is_public = ?", true), viewer, limit)
}

func (repo *generationRepository) SetVisibility(ctx context.Context, id, owner uuid.UUID, public bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GenerationModel{}).
		Where("id = ? AND user_id = ?", id, owner).
		Updates(map[string]any{"is_public": public, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update visibility")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGenerationNotFound
	}

	return nil
}

// Delete removes the generation and its likes.
func (repo *generationRepository) Delete(ctx context.Context, id uuid.UUID, owner *uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("id = ?", id)
		if owner != nil {
			query = query.Where("user_id = ?", *owner)
		}

		result := query.Delete(&model.GenerationModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete generation")
		}
		if result.RowsAffected == 0 {
			return repository.ErrGenerationNotFound
		}

		if err := tx.Where("generation_id = ?", id).Delete(&model.LikeModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete likes")
		}

		return nil
	})
}

func (repo *generationRepository) list(ctx context.Context, query *gorm.DB, viewer *uuid.UUID, limit int) ([]*entity.Generation, error) {
	query = query.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.GenerationModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list generations")
	}

	return repo.hydrate(ctx, rows, viewer)
}

// hydrate maps rows and fills like counts, the viewer's likes and owner profiles.
func (repo *generationRepository) hydrate(ctx context.Context, rows []model.GenerationModel, viewer *uuid.UUID) ([]*entity.Generation, error) {
	out := make([]*entity.Generation, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	ownerSet := make(map[uuid.UUID]struct{}, len(rows))
	owners := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
		if _, ok := ownerSet[rows[i].UserID]; !ok {
			ownerSet[rows[i].UserID] = struct{}{}
			owners = append(owners, rows[i].UserID)
		}
	}

	counts, err := likeCounts(ctx, repo.db, ids)
	if err != nil {
		return nil, err
	}

	liked := map[uuid.UUID]bool{}
	if viewer != nil {
		liked, err = likedBy(ctx, repo.db, *viewer, ids)
		if err != nil {
			return nil, err
		}
	}

	profiles, err := profilesByID(ctx, repo.db, owners)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		gen := toGenerationDomain(&rows[i])
		gen.LikeCount = counts[gen.ID]
		gen.UserHasLiked = liked[gen.ID]
		if p, ok := profiles[gen.UserID]; ok {
			gen.Profile = p.Public()
		}
		out = append(out, gen)
	}

	return out, nil
}

// --- Mapper Functions ---

func toGenerationDomain(data *model.GenerationModel) *entity.Generation {
	if data == nil {
		return nil
	}

	transforms := data.Transforms.Data()
	if transforms == nil {
		transforms = entity.Transforms{}
	}

	return &entity.Generation{
		ID:             data.ID,
		UserID:         data.UserID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		ImageURL:       data.ImageURL,
		Name:           data.Name,
		Category:       data.Category,
		Subcategory:    data.Subcategory,
		Type:           entity.PresentationType(data.Type),
		Stats:          data.Stats.Data(),
		Description:    data.Description,
		CardStatusText: data.CardStatusText,
		SourceImageURL: data.SourceImageURL,
		Transforms:     transforms,
		ComicLayout:    data.ComicLayout.Data(),
		IsPublic:       data.IsPublic,
	}
}

func fromGenerationDomain(data *entity.Generation) *model.GenerationModel {
	if data == nil {
		return nil
	}

	transforms := data.Transforms
	if transforms == nil {
		transforms = entity.Transforms{}
	}
	presentation := data.Type
	if !presentation.IsValid() {
		presentation = entity.PresentationRaw
	}

	return &model.GenerationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		ImageURL:       data.ImageURL,
		Name:           data.Name,
		Category:       data.Category,
		Subcategory:    data.Subcategory,
		Type:           string(presentation),
		Stats:          datatypes.NewJSONType(data.Stats),
		Description:    data.Description,
		CardStatusText: data.CardStatusText,
		SourceImageURL: data.SourceImageURL,
		Transforms:     datatypes.NewJSONType(transforms),
		ComicLayout:    datatypes.NewJSONType(data.ComicLayout),
		IsPublic:       data.IsPublic,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
