package models

type ArtisanProfile struct {
	BaseModel
	UserID            string       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CategoryID        string       `gorm:"type:uuid;not null;index" json:"category_id"`
	Bio               string       `gorm:"size:1000" json:"bio"`
	HourlyRate        float64      `gorm:"not null;check:hourly_rate >= 0.01" json:"hourly_rate"`
	StateID           string       `gorm:"type:uuid;not null;index" json:"state_id"`
	CityID            string       `gorm:"type:uuid;not null;index" json:"city_id"`
	Address           string       `json:"address,omitempty"`
	Availability      Availability `gorm:"type:varchar(12);default:'available'" json:"availability"`
	IsVerified        bool         `gorm:"default:false;index" json:"is_verified"`
	YearsOfExperience int          `gorm:"default:0;check:years_of_experience >= 0 AND years_of_experience <= 50" json:"years_of_experience"`
	ProfileViews      int64        `gorm:"default:0" json:"profile_views"`

	// Reputation is derived from the live review set, never stored. These two
	// are filled per call by the reputation aggregator.
	AverageRating float64 `gorm:"-:all" json:"average_rating"`
	ReviewCount   int64   `gorm:"-:all" json:"review_count"`

	// Relations
	User     User     `gorm:"foreignKey:UserID" json:"user"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
	State    State    `gorm:"foreignKey:StateID" json:"state"`
	City     City     `gorm:"foreignKey:CityID" json:"city"`
	Skills   []Skill  `gorm:"many2many:artisan_skills" json:"skills"`
	Reviews  []Review `gorm:"foreignKey:ArtisanID;constraint:OnDelete:CASCADE" json:"-"`
}

// Eligible reports whether the profile may appear in discovery results.
// Requires the User relation to be loaded.
func (p *ArtisanProfile) Eligible() bool {
	return p.IsVerified && p.User.IsActive
}

// IsTopRated is true for artisans holding a 4.5+ average across at least five
// reviews. Meaningful only after the reputation fields are filled.
func (p *ArtisanProfile) IsTopRated() bool {
	return p.AverageRating >= 4.5 && p.ReviewCount >= 5
}
