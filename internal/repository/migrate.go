package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for all row models. Both the
// SQLite and Postgres backends go through the same models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&deviceModel{},
	)
}
