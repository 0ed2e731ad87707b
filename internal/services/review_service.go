package services

import (
	"errors"
	"time"

	"craftlink/internal/appErrors"
	"craftlink/internal/logger"
	"craftlink/internal/models"
	"craftlink/internal/repositories"
	"craftlink/internal/services/dto"

	"gorm.io/gorm"
)

// ReviewListPageSize is the page size for an artisan's review list.
const ReviewListPageSize = 10

type ReviewService interface {
	SubmitReview(clientID, artisanID string, req *dto.SubmitReviewRequest) (*models.Review, error)
	ListArtisanReviews(artisanID string, ratingFilter string, page int) (*dto.ReviewListResponse, error)
	VoteHelpful(reviewID, userID string, isHelpful bool) (int64, error)
	ReportReview(reviewID, reporterID string, req *dto.ReportReviewRequest) (*models.ReviewReport, error)
	ResolveReport(reportID, adminID string) (*models.ReviewReport, error)
	ListReports(resolved *bool, page int) (*dto.ReportListResponse, error)
}

type reviewService struct {
	db          *gorm.DB
	reviewRepo  repositories.ReviewRepository
	userRepo    repositories.UserRepository
	artisanRepo repositories.ArtisanRepository
}

func NewReviewService(db *gorm.DB, reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository, artisanRepo repositories.ArtisanRepository) ReviewService {
	return &reviewService{
		db:          db,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		artisanRepo: artisanRepo,
	}
}

// SubmitReview creates a review after the eligibility checks: the author must
// hold the client role and the artisan must be verified. The one-review-per
// (client, artisan) law is enforced by the store constraint, so a concurrent
// duplicate surfaces here as DuplicateReview rather than overwriting.
func (s *reviewService) SubmitReview(clientID, artisanID string, req *dto.SubmitReviewRequest) (*models.Review, error) {
	client, err := s.userRepo.FindByID(s.db, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.Unavailable(err)
	}
	if !client.IsClient() {
		return nil, appErrors.ErrNotEligible
	}

	artisan, err := s.artisanRepo.FindByID(s.db, artisanID)
	if err != nil {
		if errors.Is(err, repositories.ErrArtisanNotFound) {
			return nil, appErrors.ErrArtisanNotFound
		}
		return nil, appErrors.Unavailable(err)
	}
	if !artisan.IsVerified {
		return nil, appErrors.ErrNotEligible
	}

	recommend := true
	if req.Recommend != nil {
		recommend = *req.Recommend
	}

	review := &models.Review{
		ClientID:  clientID,
		ArtisanID: artisanID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		Recommend: recommend,
	}

	if err := s.reviewRepo.Create(s.db, review); err != nil {
		if errors.Is(err, repositories.ErrDuplicateReview) {
			return nil, appErrors.ErrDuplicateReview
		}
		return nil, appErrors.Unavailable(err)
	}

	logger.Info("review submitted",
		"artisan_id", artisanID,
		"client_id", clientID,
		"rating", req.Rating,
	)

	return review, nil
}

func (s *reviewService) ListArtisanReviews(artisanID string, ratingFilter string, page int) (*dto.ReviewListResponse, error) {
	if _, err := s.artisanRepo.FindEligibleByID(s.db, artisanID); err != nil {
		if errors.Is(err, repositories.ErrArtisanNotFound) {
			return nil, appErrors.ErrArtisanNotFound
		}
		return nil, appErrors.Unavailable(err)
	}

	if page < 1 {
		page = 1
	}
	rating := parseRatingFilter(ratingFilter)

	reviews, total, err := s.reviewRepo.ListByArtisan(s.db, artisanID, rating, page, ReviewListPageSize)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}

	counts, err := s.reviewRepo.RatingCounts(s.db, artisanID)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}

	return &dto.ReviewListResponse{
		Reviews:      reviews,
		RatingCounts: counts,
		TotalCount:   total,
		PageNumber:   page,
		PageCount:    pageCount(total, ReviewListPageSize),
	}, nil
}

// parseRatingFilter accepts an exact star value 1..5; anything else drops the
// filter, consistent with the search engine's treatment of bad input.
func parseRatingFilter(raw string) *int {
	switch raw {
	case "1", "2", "3", "4", "5":
		value := int(raw[0] - '0')
		return &value
	}
	return nil
}

// VoteHelpful upserts the user's vote — a repeat vote replaces the previous
// one — and returns the review's updated helpful count.
func (s *reviewService) VoteHelpful(reviewID, userID string, isHelpful bool) (int64, error) {
	if _, err := s.reviewRepo.FindByID(s.db, reviewID); err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return 0, appErrors.ErrReviewNotFound
		}
		return 0, appErrors.Unavailable(err)
	}

	vote := &models.ReviewHelpfulVote{
		ReviewID:  reviewID,
		UserID:    userID,
		IsHelpful: isHelpful,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.reviewRepo.UpsertHelpfulVote(tx, vote)
	})
	if err != nil {
		return 0, appErrors.Unavailable(err)
	}

	count, err := s.reviewRepo.HelpfulCount(s.db, reviewID)
	if err != nil {
		return 0, appErrors.Unavailable(err)
	}
	return count, nil
}

func (s *reviewService) ReportReview(reviewID, reporterID string, req *dto.ReportReviewRequest) (*models.ReviewReport, error) {
	if _, err := s.reviewRepo.FindByID(s.db, reviewID); err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, appErrors.ErrReviewNotFound
		}
		return nil, appErrors.Unavailable(err)
	}

	report := &models.ReviewReport{
		ReviewID:   reviewID,
		ReporterID: reporterID,
		Reason:     models.ReportReason(req.Reason),
		Details:    req.Details,
	}

	if err := s.reviewRepo.CreateReport(s.db, report); err != nil {
		if errors.Is(err, repositories.ErrDuplicateReport) {
			return nil, appErrors.ErrDuplicateReport
		}
		return nil, appErrors.Unavailable(err)
	}

	return report, nil
}

// ResolveReport is idempotent: resolving an already-resolved report succeeds
// without touching the original resolution. Otherwise flag, resolver and
// timestamp are written together in one transaction.
func (s *reviewService) ResolveReport(reportID, adminID string) (*models.ReviewReport, error) {
	report, err := s.reviewRepo.FindReportByID(s.db, reportID)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return nil, appErrors.ErrReportNotFound
		}
		return nil, appErrors.Unavailable(err)
	}

	if report.IsResolved {
		return report, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.reviewRepo.MarkReportResolved(tx, reportID, adminID, time.Now())
	})
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}

	return s.reviewRepo.FindReportByID(s.db, reportID)
}

func (s *reviewService) ListReports(resolved *bool, page int) (*dto.ReportListResponse, error) {
	if page < 1 {
		page = 1
	}

	reports, total, err := s.reviewRepo.ListReports(s.db, resolved, page, ReviewListPageSize)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}

	return &dto.ReportListResponse{
		Reports:    reports,
		TotalCount: total,
		PageNumber: page,
		PageCount:  pageCount(total, ReviewListPageSize),
	}, nil
}
