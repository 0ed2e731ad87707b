package repositories

import (
	"errors"
	"strings"

	"craftlink/internal/models"

	"gorm.io/gorm"
)

var (
	ErrArtisanNotFound      = errors.New("artisan profile not found")
	ErrProfileAlreadyExists = errors.New("artisan profile already exists for this user")
)

// ArtisanSearchCriteria is the normalized search input. Numeric filters are
// pointers: nil means the filter was absent or malformed and is skipped.
type ArtisanSearchCriteria struct {
	Query      string
	CategoryID string
	StateID    string
	CityID     string
	MinRate    *float64
	MaxRate    *float64
	MinRating  *float64
	SortBy     string
	Page       int
	PageSize   int
}

type ArtisanRepository interface {
	Create(db *gorm.DB, profile *models.ArtisanProfile) error
	FindByID(db *gorm.DB, id string) (*models.ArtisanProfile, error)
	FindEligibleByID(db *gorm.DB, id string) (*models.ArtisanProfile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.ArtisanProfile, error)
	ReplaceSkills(db *gorm.DB, profile *models.ArtisanProfile, skills []models.Skill) error
	SetVerified(db *gorm.DB, profileID string, verified bool) error
	IncrementViews(db *gorm.DB, profileID string) error
	Search(db *gorm.DB, criteria ArtisanSearchCriteria) ([]models.ArtisanProfile, int64, error)
	FindRelated(db *gorm.DB, profile *models.ArtisanProfile, limit int) ([]models.ArtisanProfile, error)
	TopRated(db *gorm.DB, minAvg float64, minReviews int64, limit int) ([]models.ArtisanProfile, error)
	CountEligible(db *gorm.DB) (int64, error)
}

type ArtisanRepositoryImpl struct{}

func NewArtisanRepository() ArtisanRepository {
	return &ArtisanRepositoryImpl{}
}

// searchRow is the first-phase projection: profile id plus the live
// reputation snapshot used for filtering and ordering.
type searchRow struct {
	ID          string
	AvgRating   float64
	ReviewCount int64
}

const reviewStatsJoin = `LEFT JOIN (
	SELECT artisan_id, AVG(rating) AS avg_rating, COUNT(id) AS review_count
	FROM reviews GROUP BY artisan_id
) review_stats ON review_stats.artisan_id = artisan_profiles.id`

func (r *ArtisanRepositoryImpl) Create(db *gorm.DB, profile *models.ArtisanProfile) error {
	var existing models.ArtisanProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return db.Create(profile).Error
}

func (r *ArtisanRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ArtisanProfile, error) {
	var profile models.ArtisanProfile
	err := db.Preload("User").Preload("Category").Preload("State").Preload("City").
		Preload("Skills").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtisanNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindEligibleByID returns the profile only if it is discoverable:
// verified with an active backing account.
func (r *ArtisanRepositoryImpl) FindEligibleByID(db *gorm.DB, id string) (*models.ArtisanProfile, error) {
	profile, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if !profile.Eligible() {
		return nil, ErrArtisanNotFound
	}
	return profile, nil
}

func (r *ArtisanRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.ArtisanProfile, error) {
	var profile models.ArtisanProfile
	err := db.Preload("User").Preload("Category").Preload("State").Preload("City").
		Preload("Skills").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtisanNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ArtisanRepositoryImpl) ReplaceSkills(db *gorm.DB, profile *models.ArtisanProfile, skills []models.Skill) error {
	return db.Model(profile).Association("Skills").Replace(skills)
}

func (r *ArtisanRepositoryImpl) SetVerified(db *gorm.DB, profileID string, verified bool) error {
	result := db.Model(&models.ArtisanProfile{}).Where("id = ?", profileID).
		Update("is_verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArtisanNotFound
	}
	return nil
}

// IncrementViews bumps the view counter with a store-level atomic update so
// concurrent readers never lose increments.
func (r *ArtisanRepositoryImpl) IncrementViews(db *gorm.DB, profileID string) error {
	return db.Model(&models.ArtisanProfile{}).Where("id = ?", profileID).
		Update("profile_views", gorm.Expr("profile_views + ?", 1)).Error
}

// eligibleBase applies the unconditional discovery predicate: profiles are
// never returned unless verified and backed by an active account.
func (r *ArtisanRepositoryImpl) eligibleBase(db *gorm.DB) *gorm.DB {
	return db.Model(&models.ArtisanProfile{}).
		Joins("JOIN users ON users.id = artisan_profiles.user_id").
		Joins(reviewStatsJoin).
		Where("artisan_profiles.is_verified = ? AND users.is_active = ?", true, true)
}

// Search runs the filter/rank/paginate pipeline in two phases: first the ids
// and reputation snapshot of the matching page, then the full profiles with
// relations preloaded, reattached in ranked order. The snapshot is computed
// once and shared by filtering, ordering and the returned annotations.
func (r *ArtisanRepositoryImpl) Search(db *gorm.DB, criteria ArtisanSearchCriteria) ([]models.ArtisanProfile, int64, error) {
	query := r.eligibleBase(db).
		Joins("JOIN categories ON categories.id = artisan_profiles.category_id")

	if criteria.Query != "" {
		term := "%" + strings.ToLower(criteria.Query) + "%"
		// OR across name, category, skill and bio; EXISTS keeps a profile
		// with several matching skills as a single row.
		query = query.Where(`(
			LOWER(users.first_name) LIKE ?
			OR LOWER(users.last_name) LIKE ?
			OR LOWER(categories.name) LIKE ?
			OR LOWER(artisan_profiles.bio) LIKE ?
			OR EXISTS (
				SELECT 1 FROM artisan_skills
				JOIN skills ON skills.id = artisan_skills.skill_id
				WHERE artisan_skills.artisan_profile_id = artisan_profiles.id
				AND LOWER(skills.name) LIKE ?
			))`, term, term, term, term, term)
	}

	if criteria.CategoryID != "" {
		query = query.Where("artisan_profiles.category_id = ?", criteria.CategoryID)
	}
	if criteria.StateID != "" {
		query = query.Where("artisan_profiles.state_id = ?", criteria.StateID)
	}
	if criteria.CityID != "" {
		query = query.Where("artisan_profiles.city_id = ?", criteria.CityID)
	}
	if criteria.MinRate != nil {
		query = query.Where("artisan_profiles.hourly_rate >= ?", *criteria.MinRate)
	}
	if criteria.MaxRate != nil {
		query = query.Where("artisan_profiles.hourly_rate <= ?", *criteria.MaxRate)
	}
	if criteria.MinRating != nil {
		// Compared against the live aggregate, not a stored column.
		query = query.Where("COALESCE(review_stats.avg_rating, 0) >= ?", *criteria.MinRating)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(criteria.SortBy)).
		Limit(criteria.PageSize).
		Offset((criteria.Page - 1) * criteria.PageSize)

	var rows []searchRow
	err := query.Select(`artisan_profiles.id AS id,
		COALESCE(review_stats.avg_rating, 0) AS avg_rating,
		COALESCE(review_stats.review_count, 0) AS review_count`).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	profiles, err := r.hydrate(db, rows)
	return profiles, total, err
}

// orderClause maps a sort key to a deterministic ordering; ties always fall
// through to the profile id so pagination is stable across repeated calls.
func orderClause(sortBy string) string {
	switch sortBy {
	case "rating":
		return "COALESCE(review_stats.avg_rating, 0) DESC, COALESCE(review_stats.review_count, 0) DESC, artisan_profiles.id ASC"
	case "price_low":
		return "artisan_profiles.hourly_rate ASC, artisan_profiles.id ASC"
	case "price_high":
		return "artisan_profiles.hourly_rate DESC, artisan_profiles.id ASC"
	default: // newest
		return "artisan_profiles.created_at DESC, artisan_profiles.id ASC"
	}
}

// hydrate loads full profiles for the ranked rows and reattaches the
// reputation snapshot, preserving row order.
func (r *ArtisanRepositoryImpl) hydrate(db *gorm.DB, rows []searchRow) ([]models.ArtisanProfile, error) {
	if len(rows) == 0 {
		return []models.ArtisanProfile{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	var loaded []models.ArtisanProfile
	err := db.Preload("User").Preload("Category").Preload("State").Preload("City").
		Preload("Skills").Where("id IN ?", ids).Find(&loaded).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.ArtisanProfile, len(loaded))
	for _, p := range loaded {
		byID[p.ID] = p
	}

	profiles := make([]models.ArtisanProfile, 0, len(rows))
	for _, row := range rows {
		p, ok := byID[row.ID]
		if !ok {
			continue
		}
		p.AverageRating = row.AvgRating
		p.ReviewCount = row.ReviewCount
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// FindRelated returns discoverable artisans in the same category and state,
// best rated first, excluding the profile itself.
func (r *ArtisanRepositoryImpl) FindRelated(db *gorm.DB, profile *models.ArtisanProfile, limit int) ([]models.ArtisanProfile, error) {
	var rows []searchRow
	err := r.eligibleBase(db).
		Where("artisan_profiles.category_id = ? AND artisan_profiles.state_id = ?", profile.CategoryID, profile.StateID).
		Where("artisan_profiles.id <> ?", profile.ID).
		Order("COALESCE(review_stats.avg_rating, 0) DESC, artisan_profiles.id ASC").
		Limit(limit).
		Select(`artisan_profiles.id AS id,
			COALESCE(review_stats.avg_rating, 0) AS avg_rating,
			COALESCE(review_stats.review_count, 0) AS review_count`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.hydrate(db, rows)
}

// TopRated returns discoverable artisans at or above the given live average
// with at least minReviews reviews.
func (r *ArtisanRepositoryImpl) TopRated(db *gorm.DB, minAvg float64, minReviews int64, limit int) ([]models.ArtisanProfile, error) {
	var rows []searchRow
	err := r.eligibleBase(db).
		Where("COALESCE(review_stats.avg_rating, 0) >= ?", minAvg).
		Where("COALESCE(review_stats.review_count, 0) >= ?", minReviews).
		Order("COALESCE(review_stats.avg_rating, 0) DESC, COALESCE(review_stats.review_count, 0) DESC, artisan_profiles.id ASC").
		Limit(limit).
		Select(`artisan_profiles.id AS id,
			COALESCE(review_stats.avg_rating, 0) AS avg_rating,
			COALESCE(review_stats.review_count, 0) AS review_count`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.hydrate(db, rows)
}

func (r *ArtisanRepositoryImpl) CountEligible(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&models.ArtisanProfile{}).
		Joins("JOIN users ON users.id = artisan_profiles.user_id").
		Where("artisan_profiles.is_verified = ? AND users.is_active = ?", true, true).
		Count(&total).Error
	return total, err
}
