package database

import (
	"errors"

	"craftlink/internal/auth"
	"craftlink/internal/config"
	"craftlink/internal/logger"
	"craftlink/internal/models"

	"gorm.io/gorm"
)

// SeedFirstAdmin creates the bootstrap admin account when none exists. The
// credentials come from config; without them and with no admin present the
// verification queue would be unreachable.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.Where("role = ?", models.UserRoleAdmin).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("no admin account exists and no admin credentials configured")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     "admin",
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("seeded first admin user", "email", cfg.Admin.Email)
	return nil
}

// SeedCatalog loads an initial reference catalog if the categories table is
// empty. Mirrors the reference data the directory launched with.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := map[string][]string{
		"Plumbing":     {"Pipe Installation", "Leak Repair", "Drain Cleaning", "Water Heater Service"},
		"Electrical":   {"Wiring", "Solar Installation", "Generator Repair", "Lighting"},
		"Carpentry":    {"Furniture Making", "Roofing", "Door Installation", "Cabinet Work"},
		"Tailoring":    {"Traditional Wear", "Suits", "Alterations", "Embroidery"},
		"Hairdressing": {"Braiding", "Barbing", "Styling", "Treatment"},
		"Mechanics":    {"Engine Repair", "Brake Service", "Diagnostics", "Bodywork"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for name, skills := range catalog {
			category := &models.Category{Name: name}
			if err := tx.Create(category).Error; err != nil {
				return err
			}
			for _, skillName := range skills {
				skill := &models.Skill{Name: skillName, CategoryID: category.ID}
				if err := tx.Create(skill).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
