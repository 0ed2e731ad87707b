package dto

import "craftlink/internal/models"

// ArtisanDetailResponse is the profile detail payload: the profile with its
// live reputation, the first page of reviews, and related artisans.
type ArtisanDetailResponse struct {
	Artisan         *models.ArtisanProfile  `json:"artisan"`
	IsTopRated      bool                    `json:"is_top_rated"`
	Reviews         ReviewListResponse      `json:"reviews"`
	RelatedArtisans []models.ArtisanProfile `json:"related_artisans"`
}
