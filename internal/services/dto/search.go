package dto

import "craftlink/internal/models"

// ArtisanSearchRequest mirrors the public query-string contract. Every field
// is optional and arrives as a raw string; numeric fields are normalized by
// the search service, which ignores malformed values instead of failing the
// query.
type ArtisanSearchRequest struct {
	Search       string `form:"search"`
	Category     string `form:"category"`
	State        string `form:"state"`
	City         string `form:"city"`
	MinRate      string `form:"min_rate"`
	MaxRate      string `form:"max_rate"`
	MinRating    string `form:"min_rating"`
	VerifiedOnly string `form:"verified_only"`
	SortBy       string `form:"sort_by"`
	Page         string `form:"page"`
}

// ArtisanSearchResponse is one page of ranked results. Each item carries the
// average rating and review count computed for this call.
type ArtisanSearchResponse struct {
	Items      []models.ArtisanProfile `json:"items"`
	TotalCount int64                   `json:"total_count"`
	PageNumber int                     `json:"page_number"`
	PageCount  int                     `json:"page_count"`
}

// FeaturedCategory annotates a catalog category with its discoverable-artisan
// count.
type FeaturedCategory struct {
	models.Category
	ArtisanCount int64 `json:"artisan_count"`
}

// HomeStatsResponse backs the landing page aggregates.
type HomeStatsResponse struct {
	FeaturedCategories []FeaturedCategory      `json:"featured_categories"`
	TopArtisans        []models.ArtisanProfile `json:"top_artisans"`
	RecentReviews      []models.Review         `json:"recent_reviews"`
	TotalArtisans      int64                   `json:"total_artisans"`
	TotalCategories    int64                   `json:"total_categories"`
	TotalReviews       int64                   `json:"total_reviews"`
}
