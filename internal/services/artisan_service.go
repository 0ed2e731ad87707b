package services

import (
	"errors"

	"craftlink/internal/appErrors"
	"craftlink/internal/logger"
	"craftlink/internal/repositories"
	"craftlink/internal/services/dto"

	"gorm.io/gorm"
)

const (
	detailReviewPageSize = 5
	relatedArtisanLimit  = 4
	featuredCategoryMax  = 6
	topArtisanMax        = 8
	recentReviewMax      = 6

	// Home-page top-artisan thresholds, looser than the top-rated badge.
	homeTopMinAverage = 4.0
	homeTopMinReviews = 3
)

type ArtisanService interface {
	GetArtisanDetail(id string) (*dto.ArtisanDetailResponse, error)
	HomeStats() (*dto.HomeStatsResponse, error)
}

type artisanService struct {
	db          *gorm.DB
	artisanRepo repositories.ArtisanRepository
	reviewRepo  repositories.ReviewRepository
	catalogRepo repositories.CatalogRepository
}

func NewArtisanService(db *gorm.DB, artisanRepo repositories.ArtisanRepository, reviewRepo repositories.ReviewRepository, catalogRepo repositories.CatalogRepository) ArtisanService {
	return &artisanService{
		db:          db,
		artisanRepo: artisanRepo,
		reviewRepo:  reviewRepo,
		catalogRepo: catalogRepo,
	}
}

// GetArtisanDetail serves a direct profile read: only discoverable profiles
// resolve, and every read bumps the view counter (no dedup by viewer).
func (s *artisanService) GetArtisanDetail(id string) (*dto.ArtisanDetailResponse, error) {
	profile, err := s.artisanRepo.FindEligibleByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrArtisanNotFound) {
			return nil, appErrors.ErrArtisanNotFound
		}
		return nil, appErrors.Unavailable(err)
	}

	if err := s.artisanRepo.IncrementViews(s.db, profile.ID); err != nil {
		// A lost view increment is not worth failing the read.
		logger.Warn("failed to increment profile views", "artisan_id", profile.ID, "error", err)
	} else {
		profile.ProfileViews++
	}

	stats, err := s.reviewRepo.Stats(s.db, profile.ID)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}
	profile.AverageRating = RoundRating(stats.AverageRating)
	profile.ReviewCount = stats.ReviewCount

	reviews, totalReviews, err := s.reviewRepo.ListByArtisan(s.db, profile.ID, nil, 1, detailReviewPageSize)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}
	counts, err := s.reviewRepo.RatingCounts(s.db, profile.ID)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}

	related, err := s.artisanRepo.FindRelated(s.db, profile, relatedArtisanLimit)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}
	for i := range related {
		related[i].AverageRating = RoundRating(related[i].AverageRating)
	}

	return &dto.ArtisanDetailResponse{
		Artisan:    profile,
		IsTopRated: profile.IsTopRated(),
		Reviews: dto.ReviewListResponse{
			Reviews:      reviews,
			RatingCounts: counts,
			TotalCount:   totalReviews,
			PageNumber:   1,
			PageCount:    pageCount(totalReviews, detailReviewPageSize),
		},
		RelatedArtisans: related,
	}, nil
}

// HomeStats assembles the landing aggregates: busiest categories, the best
// rated discoverable artisans, latest reviews and the headline totals.
func (s *artisanService) HomeStats() (*dto.HomeStatsResponse, error) {
	featured, err := s.catalogRepo.FeaturedCategories(s.db, featuredCategoryMax)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}
	featuredOut := make([]dto.FeaturedCategory, 0, len(featured))
	for _, f := range featured {
		featuredOut = append(featuredOut, dto.FeaturedCategory{
			Category:     f.Category,
			ArtisanCount: f.ArtisanCount,
		})
	}

	top, err := s.artisanRepo.TopRated(s.db, homeTopMinAverage, homeTopMinReviews, topArtisanMax)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}
	for i := range top {
		top[i].AverageRating = RoundRating(top[i].AverageRating)
	}

	recent, err := s.reviewRepo.RecentReviews(s.db, recentReviewMax)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}

	totalArtisans, err := s.artisanRepo.CountEligible(s.db)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}
	totalCategories, err := s.catalogRepo.CountCategories(s.db)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}
	totalReviews, err := s.reviewRepo.CountAll(s.db)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}

	return &dto.HomeStatsResponse{
		FeaturedCategories: featuredOut,
		TopArtisans:        top,
		RecentReviews:      recent,
		TotalArtisans:      totalArtisans,
		TotalCategories:    totalCategories,
		TotalReviews:       totalReviews,
	}, nil
}
