package model

import (
	"time"

	"forthecos/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GenerationModel mirrors the 'generations' table.
type GenerationModel struct {
	ID             uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID                              `gorm:"type:uuid;not null;index"`
	ImageURL       string                                 `gorm:"type:text;not null"`
	Name           string                                 `gorm:"type:varchar(255)"`
	Category       string                                 `gorm:"type:varchar(100)"`
	Subcategory    string                                 `gorm:"type:varchar(100)"`
	Type           string                                 `gorm:"type:varchar(20);not null;default:raw"`
	Stats          datatypes.JSONType[*entity.Stats]      `gorm:"not null"`
	Description    string                                 `gorm:"type:text"`
	CardStatusText string                                 `gorm:"type:varchar(100)"`
	SourceImageURL string                                 `gorm:"type:text"`
	Transforms     datatypes.JSONType[entity.Transforms]  `gorm:"not null"`
	ComicLayout    datatypes.JSONType[entity.ComicLayout] `gorm:"not null"`
	IsPublic       bool                                   `gorm:"not null;default:false;index"`
	CreatedAt      time.Time                              `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (GenerationModel) TableName() string {
	return "generations"
}

// LikeModel mirrors the 'likes' table. The pair (user, generation) is unique.
type LikeModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	GenerationID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
