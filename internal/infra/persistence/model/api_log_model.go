package model

import (
	"time"

	"github.com/google/uuid"
)

// APILogModel mirrors the 'api_logs' table.
type APILogModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	UserSession string     `gorm:"type:varchar(100)"`
	Model       string     `gorm:"type:varchar(100)"`
	Category    string     `gorm:"type:varchar(100)"`
	Subcategory string     `gorm:"type:varchar(100)"`
	Cost        float64
	Status      string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (APILogModel) TableName() string {
	return "api_logs"
}
