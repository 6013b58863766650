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
	"gorm.io/gorm/clause"
)

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (repo *likeRepository) Add(ctx context.Context, like *entity.Like) error {
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.LikeModel{
			UserID:       like.UserID,
			GenerationID: like.GenerationID,
			CreatedAt:    like.CreatedAt,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add like")
	}

	return nil
}

func (repo *likeRepository) Remove(ctx context.Context, userID, generationID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND generation_id = ?", userID, generationID).
		Delete(&model.LikeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove like")
	}

	return nil
}

func (repo *likeRepository) Exists(ctx context.Context, userID, generationID uuid.UUID) (bool, error) {
	var n int64
	err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("user_id = ? AND generation_id = ?", userID, generationID).
		Count(&n).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check like")
	}

	return n > 0, nil
}

func (repo *likeRepository) Count(ctx context.Context, generationID uuid.UUID) (int, error) {
	counts, err := likeCounts(ctx, repo.db, []uuid.UUID{generationID})
	if err != nil {
		return 0, err
	}

	return counts[generationID], nil
}

type likeCountRow struct {
	GenerationID uuid.UUID
	N            int
}

func likeCounts(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	var rows []likeCountRow
	err := db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Select("generation_id, COUNT(*) AS n").
		Where("generation_id IN ?", ids).
		Group("generation_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count likes")
	}

	out := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		out[r.GenerationID] = r.N
	}

	return out, nil
}

func likedBy(ctx context.Context, db *gorm.DB, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	var liked []uuid.UUID
	err := db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("user_id = ? AND generation_id IN ?", userID, ids).
		Pluck("generation_id", &liked).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load viewer likes")
	}

	out := make(map[uuid.UUID]bool, len(liked))
	for _, id := range liked {
		out[id] = true
	}

	return out, nil
}
