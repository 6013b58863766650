package model

import (
	"time"

	"github.com/google/uuid"
)

// PhysicalOrderModel mirrors the 'physical_orders' table.
type PhysicalOrderModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;index"`
	PaymentOrderID      string    `gorm:"type:varchar(255);not null"`
	ItemType            string    `gorm:"type:varchar(20);not null"`
	ItemName            string    `gorm:"type:varchar(100);not null"`
	Amount              float64   `gorm:"not null"`
	Status              string    `gorm:"type:varchar(20);not null;default:pending;index"`
	PreviewImageURL     string    `gorm:"type:text"`
	BackPreviewImageURL string    `gorm:"type:text"`
	PaidAt              *time.Time
	CreatedAt           time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PhysicalOrderModel) TableName() string {
	return "physical_orders"
}
