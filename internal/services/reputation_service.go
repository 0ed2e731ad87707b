package services

import (
	"math"

	"craftlink/internal/models"
	"craftlink/internal/repositories"

	"gorm.io/gorm"
)

// TopRatedMinAverage and TopRatedMinReviews are the top-rated badge
// thresholds.
const (
	TopRatedMinAverage = 4.5
	TopRatedMinReviews = 5
)

// ReputationService computes derived rating metrics from the live review set.
// Nothing is cached or denormalized: every call reflects the reviews as they
// are now, and an artisan with no reviews yields the zero values, never an
// error.
type ReputationService interface {
	AverageRating(artisanID string) (float64, error)
	ReviewCount(artisanID string) (int64, error)
	IsTopRated(artisanID string) (bool, error)
	// Annotate fills the reputation fields for a batch of profiles from a
	// single aggregation snapshot.
	Annotate(db *gorm.DB, profiles []models.ArtisanProfile) error
}

type reputationService struct {
	db         *gorm.DB
	reviewRepo repositories.ReviewRepository
}

func NewReputationService(db *gorm.DB, reviewRepo repositories.ReviewRepository) ReputationService {
	return &reputationService{db: db, reviewRepo: reviewRepo}
}

// RoundRating rounds an average to one decimal place, half up.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func (s *reputationService) AverageRating(artisanID string) (float64, error) {
	stats, err := s.reviewRepo.Stats(s.db, artisanID)
	if err != nil {
		return 0, err
	}
	return RoundRating(stats.AverageRating), nil
}

func (s *reputationService) ReviewCount(artisanID string) (int64, error) {
	stats, err := s.reviewRepo.Stats(s.db, artisanID)
	if err != nil {
		return 0, err
	}
	return stats.ReviewCount, nil
}

func (s *reputationService) IsTopRated(artisanID string) (bool, error) {
	stats, err := s.reviewRepo.Stats(s.db, artisanID)
	if err != nil {
		return false, err
	}
	return RoundRating(stats.AverageRating) >= TopRatedMinAverage &&
		stats.ReviewCount >= TopRatedMinReviews, nil
}

func (s *reputationService) Annotate(db *gorm.DB, profiles []models.ArtisanProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	ids := make([]string, len(profiles))
	for i := range profiles {
		ids[i] = profiles[i].ID
	}

	stats, err := s.reviewRepo.StatsFor(db, ids)
	if err != nil {
		return err
	}

	for i := range profiles {
		st := stats[profiles[i].ID] // zero value when unreviewed
		profiles[i].AverageRating = RoundRating(st.AverageRating)
		profiles[i].ReviewCount = st.ReviewCount
	}
	return nil
}
