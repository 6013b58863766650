package model

import (
	"time"

	"forthecos/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Email     string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Roles     datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile *ProfileModel `gorm:"foreignKey:ID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. ID references users.id.
type ProfileModel struct {
	ID          uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	Email       string                                 `gorm:"type:varchar(255)"`
	DisplayName string                                 `gorm:"type:varchar(100)"`
	AvatarURL   string                                 `gorm:"type:text"`
	Socials     datatypes.JSONType[entity.SocialLinks] `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
