package dto

import "craftlink/internal/models"

type SubmitReviewRequest struct {
	Rating    int    `json:"rating" binding:"required" validate:"min=1,max=5"`
	Title     string `json:"title" validate:"max=200"`
	Comment   string `json:"comment" binding:"required" validate:"required,max=1000"`
	Recommend *bool  `json:"recommend"`
}

type VoteHelpfulRequest struct {
	IsHelpful *bool `json:"is_helpful" binding:"required"`
}

type VoteHelpfulResponse struct {
	Success      bool  `json:"success"`
	HelpfulCount int64 `json:"helpful_count"`
}

type ReportReviewRequest struct {
	Reason  string `json:"reason" binding:"required" validate:"required,is-report-reason"`
	Details string `json:"details" validate:"max=500"`
}

// ReviewListResponse is one page of an artisan's reviews with the per-star
// breakdown.
type ReviewListResponse struct {
	Reviews      []models.Review `json:"reviews"`
	RatingCounts map[int]int64   `json:"rating_counts"`
	TotalCount   int64           `json:"total_count"`
	PageNumber   int             `json:"page_number"`
	PageCount    int             `json:"page_count"`
}

// ReportListResponse is one page of the admin report queue.
type ReportListResponse struct {
	Reports    []models.ReviewReport `json:"reports"`
	TotalCount int64                 `json:"total_count"`
	PageNumber int                   `json:"page_number"`
	PageCount  int                   `json:"page_count"`
}
