package models

import "time"

type Review struct {
	BaseModel
	ClientID  string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_client_artisan" json:"client_id"`
	ArtisanID string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_client_artisan;index" json:"artisan_id"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Title     string `gorm:"size:200" json:"title,omitempty"`
	Comment   string `gorm:"size:1000;not null" json:"comment"`
	Recommend bool   `gorm:"default:true" json:"recommend"`

	// Relations
	Client  User           `gorm:"foreignKey:ClientID" json:"client"`
	Artisan ArtisanProfile `gorm:"foreignKey:ArtisanID" json:"-"`
}

// ReviewHelpfulVote is a single mutable record per (review, user); a repeat
// vote replaces the previous one rather than appending.
type ReviewHelpfulVote struct {
	BaseModel
	ReviewID  string `gorm:"type:uuid;not null;uniqueIndex:idx_votes_review_user" json:"review_id"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_votes_review_user" json:"user_id"`
	IsHelpful bool   `gorm:"not null" json:"is_helpful"`

	Review Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

type ReviewReport struct {
	BaseModel
	ReviewID   string       `gorm:"type:uuid;not null;uniqueIndex:idx_reports_review_reporter" json:"review_id"`
	ReporterID string       `gorm:"type:uuid;not null;uniqueIndex:idx_reports_review_reporter" json:"reporter_id"`
	Reason     ReportReason `gorm:"type:varchar(20);not null" json:"reason"`
	Details    string       `gorm:"size:500" json:"details,omitempty"`
	IsResolved bool         `gorm:"default:false;index" json:"is_resolved"`
	ResolvedAt *time.Time   `json:"resolved_at,omitempty"`
	ResolvedBy *string      `gorm:"type:uuid" json:"resolved_by,omitempty"`

	Review Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}
