package model

import "time"

// GlobalSettingsID keys the single settings row.
const GlobalSettingsID = "global"

// AdminSettingsModel mirrors the 'admin_settings' table.
type AdminSettingsModel struct {
	ID                   string `gorm:"type:varchar(20);primaryKey"`
	DefaultTitle         string `gorm:"type:varchar(255)"`
	DefaultDescription   string `gorm:"type:text"`
	DefaultStatusText    string `gorm:"type:varchar(100)"`
	PaymentLinkComic     string `gorm:"type:text"`
	PaymentLinkCard      string `gorm:"type:text"`
	PriceComicPrint      float64
	PriceCardSet         float64
	AutomationWebhookURL string `gorm:"type:text"`
	GenerationEndpoint   string `gorm:"type:text"`
	GenerationAPIKey     string `gorm:"type:text"`
	GenerationModel      string `gorm:"type:varchar(100)"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminSettingsModel) TableName() string {
	return "admin_settings"
}
