package repositories

import (
	"errors"
	"time"

	"craftlink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("review already exists for this client and artisan")
	ErrReportNotFound  = errors.New("report not found")
	ErrDuplicateReport = errors.New("report already exists for this reviewer and review")
)

// ArtisanRatingStats is a point-in-time reputation snapshot. AverageRating is
// the raw (unrounded) mean; presentation rounding happens in the reputation
// service.
type ArtisanRatingStats struct {
	ArtisanID     string
	AverageRating float64
	ReviewCount   int64
}

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	ExistsForPair(db *gorm.DB, clientID, artisanID string) (bool, error)
	ListByArtisan(db *gorm.DB, artisanID string, rating *int, page, pageSize int) ([]models.Review, int64, error)
	RatingCounts(db *gorm.DB, artisanID string) (map[int]int64, error)
	RecentReviews(db *gorm.DB, limit int) ([]models.Review, error)
	CountAll(db *gorm.DB) (int64, error)

	// Reputation
	Stats(db *gorm.DB, artisanID string) (*ArtisanRatingStats, error)
	StatsFor(db *gorm.DB, artisanIDs []string) (map[string]ArtisanRatingStats, error)

	// Helpful votes
	UpsertHelpfulVote(db *gorm.DB, vote *models.ReviewHelpfulVote) error
	HelpfulCount(db *gorm.DB, reviewID string) (int64, error)

	// Reports
	CreateReport(db *gorm.DB, report *models.ReviewReport) error
	FindReportByID(db *gorm.DB, id string) (*models.ReviewReport, error)
	ListReports(db *gorm.DB, resolved *bool, page, pageSize int) ([]models.ReviewReport, int64, error)
	MarkReportResolved(db *gorm.DB, reportID, adminID string, at time.Time) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

// Create inserts the review, relying on the (client, artisan) unique
// constraint rather than a read-then-write check, so two concurrent
// submissions for the same pair cannot both land.
func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	if err := db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateReview
		}
		return err
	}
	return nil
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	if err := db.Preload("Client").First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) ExistsForPair(db *gorm.DB, clientID, artisanID string) (bool, error) {
	var count int64
	err := db.Model(&models.Review{}).
		Where("client_id = ? AND artisan_id = ?", clientID, artisanID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepositoryImpl) ListByArtisan(db *gorm.DB, artisanID string, rating *int, page, pageSize int) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{}).Where("artisan_id = ?", artisanID)
	if rating != nil {
		query = query.Where("rating = ?", *rating)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Preload("Client").
		Order("created_at DESC, id ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) RatingCounts(db *gorm.DB, artisanID string) (map[int]int64, error) {
	var rows []struct {
		Rating int
		Total  int64
	}
	err := db.Model(&models.Review{}).
		Select("rating, COUNT(id) AS total").
		Where("artisan_id = ?", artisanID).
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, 5)
	for star := 1; star <= 5; star++ {
		counts[star] = 0
	}
	for _, row := range rows {
		counts[row.Rating] = row.Total
	}
	return counts, nil
}

func (r *ReviewRepositoryImpl) RecentReviews(db *gorm.DB, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Client").
		Order("created_at DESC, id ASC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&models.Review{}).Count(&total).Error
	return total, err
}

// Stats recomputes the aggregate from the live review set. An artisan with no
// reviews yields the zero snapshot, never an error.
func (r *ReviewRepositoryImpl) Stats(db *gorm.DB, artisanID string) (*ArtisanRatingStats, error) {
	var row struct {
		AvgRating   float64
		ReviewCount int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(id) AS review_count").
		Where("artisan_id = ?", artisanID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &ArtisanRatingStats{
		ArtisanID:     artisanID,
		AverageRating: row.AvgRating,
		ReviewCount:   row.ReviewCount,
	}, nil
}

// StatsFor aggregates once for a whole set of artisans so a ranked page reads
// a single consistent snapshot. Artisans with no reviews are absent from the
// result map.
func (r *ReviewRepositoryImpl) StatsFor(db *gorm.DB, artisanIDs []string) (map[string]ArtisanRatingStats, error) {
	stats := make(map[string]ArtisanRatingStats, len(artisanIDs))
	if len(artisanIDs) == 0 {
		return stats, nil
	}

	var rows []struct {
		ArtisanID   string
		AvgRating   float64
		ReviewCount int64
	}
	err := db.Model(&models.Review{}).
		Select("artisan_id, AVG(rating) AS avg_rating, COUNT(id) AS review_count").
		Where("artisan_id IN ?", artisanIDs).
		Group("artisan_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats[row.ArtisanID] = ArtisanRatingStats{
			ArtisanID:     row.ArtisanID,
			AverageRating: row.AvgRating,
			ReviewCount:   row.ReviewCount,
		}
	}
	return stats, nil
}

// UpsertHelpfulVote replaces a user's previous vote on the review in a single
// statement, keeping one mutable row per (review, user).
func (r *ReviewRepositoryImpl) UpsertHelpfulVote(db *gorm.DB, vote *models.ReviewHelpfulVote) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_helpful": vote.IsHelpful,
			"updated_at": time.Now(),
		}),
	}).Create(vote).Error
}

func (r *ReviewRepositoryImpl) HelpfulCount(db *gorm.DB, reviewID string) (int64, error) {
	var count int64
	err := db.Model(&models.ReviewHelpfulVote{}).
		Where("review_id = ? AND is_helpful = ?", reviewID, true).
		Count(&count).Error
	return count, err
}

func (r *ReviewRepositoryImpl) CreateReport(db *gorm.DB, report *models.ReviewReport) error {
	if err := db.Create(report).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateReport
		}
		return err
	}
	return nil
}

func (r *ReviewRepositoryImpl) FindReportByID(db *gorm.DB, id string) (*models.ReviewReport, error) {
	var report models.ReviewReport
	if err := db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReviewRepositoryImpl) ListReports(db *gorm.DB, resolved *bool, page, pageSize int) ([]models.ReviewReport, int64, error) {
	query := db.Model(&models.ReviewReport{})
	if resolved != nil {
		query = query.Where("is_resolved = ?", *resolved)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.ReviewReport
	err := query.Preload("Review").Preload("Review.Client").
		Order("created_at DESC, id ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&reports).Error
	return reports, total, err
}

// MarkReportResolved sets the resolution flag, resolver and timestamp
// together; they are never written independently.
func (r *ReviewRepositoryImpl) MarkReportResolved(db *gorm.DB, reportID, adminID string, at time.Time) error {
	result := db.Model(&models.ReviewReport{}).Where("id = ?", reportID).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"resolved_by": adminID,
			"resolved_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
