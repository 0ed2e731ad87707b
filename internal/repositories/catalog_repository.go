package repositories

import (
	"errors"

	"craftlink/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrStateNotFound    = errors.New("state not found")
	ErrCityNotFound     = errors.New("city not found")
)

// CategoryArtisanCount annotates a category with its eligible-artisan count.
type CategoryArtisanCount struct {
	models.Category
	ArtisanCount int64 `json:"artisan_count"`
}

type CatalogRepository interface {
	ListCategories(db *gorm.DB) ([]models.Category, error)
	FindCategoryByID(db *gorm.DB, id string) (*models.Category, error)
	ListSkillsByCategory(db *gorm.DB, categoryID string) ([]models.Skill, error)
	FindSkillsByIDs(db *gorm.DB, ids []string) ([]models.Skill, error)
	ListStates(db *gorm.DB) ([]models.State, error)
	FindStateByID(db *gorm.DB, id string) (*models.State, error)
	ListCitiesByState(db *gorm.DB, stateID string) ([]models.City, error)
	FindCityByID(db *gorm.DB, id string) (*models.City, error)
	CountCategories(db *gorm.DB) (int64, error)
	FeaturedCategories(db *gorm.DB, limit int) ([]CategoryArtisanCount, error)
}

type CatalogRepositoryImpl struct{}

func NewCatalogRepository() CatalogRepository {
	return &CatalogRepositoryImpl{}
}

func (r *CatalogRepositoryImpl) ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CatalogRepositoryImpl) FindCategoryByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepositoryImpl) ListSkillsByCategory(db *gorm.DB, categoryID string) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Where("category_id = ?", categoryID).Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *CatalogRepositoryImpl) FindSkillsByIDs(db *gorm.DB, ids []string) ([]models.Skill, error) {
	var skills []models.Skill
	if len(ids) == 0 {
		return skills, nil
	}
	err := db.Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}

func (r *CatalogRepositoryImpl) ListStates(db *gorm.DB) ([]models.State, error) {
	var states []models.State
	err := db.Order("name ASC").Find(&states).Error
	return states, err
}

func (r *CatalogRepositoryImpl) FindStateByID(db *gorm.DB, id string) (*models.State, error) {
	var state models.State
	if err := db.First(&state, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}
	return &state, nil
}

func (r *CatalogRepositoryImpl) ListCitiesByState(db *gorm.DB, stateID string) ([]models.City, error) {
	var cities []models.City
	err := db.Where("state_id = ?", stateID).Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *CatalogRepositoryImpl) FindCityByID(db *gorm.DB, id string) (*models.City, error) {
	var city models.City
	if err := db.First(&city, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (r *CatalogRepositoryImpl) CountCategories(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&models.Category{}).Count(&total).Error
	return total, err
}

// FeaturedCategories returns categories ordered by how many discoverable
// artisans they hold.
func (r *CatalogRepositoryImpl) FeaturedCategories(db *gorm.DB, limit int) ([]CategoryArtisanCount, error) {
	var rows []CategoryArtisanCount
	err := db.Model(&models.Category{}).
		Select("categories.*, COUNT(artisan_profiles.id) AS artisan_count").
		Joins(`LEFT JOIN artisan_profiles ON artisan_profiles.category_id = categories.id
			AND artisan_profiles.is_verified = ?
			AND artisan_profiles.user_id IN (SELECT id FROM users WHERE is_active = ?)`, true, true).
		Group("categories.id").
		Order("artisan_count DESC, categories.name ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
