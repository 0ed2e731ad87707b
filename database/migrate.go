package database

import (
	"craftlink/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all models. Catalog tables
// go first so the profile foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Skill{},
		&models.State{},
		&models.City{},
		&models.User{},
		&models.ArtisanProfile{},
		&models.Review{},
		&models.ReviewHelpfulVote{},
		&models.ReviewReport{},
	)
}
