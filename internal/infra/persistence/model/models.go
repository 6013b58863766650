// Package model holds the GORM persistence models.
package model

// All lists every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&GenerationModel{},
		&LikeModel{},
		&PhysicalOrderModel{},
		&AdminSettingsModel{},
		&APILogModel{},
	}
}
