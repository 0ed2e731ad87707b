package models

// Category is a top-level trade (Plumbing, Electrical, ...).
type Category struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`

	Skills []Skill `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// Skill belongs to exactly one category; names are unique within it.
type Skill struct {
	BaseModel
	Name       string `gorm:"not null;uniqueIndex:idx_skills_name_category" json:"name"`
	CategoryID string `gorm:"type:uuid;not null;uniqueIndex:idx_skills_name_category;index" json:"category_id"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

type State struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Code string `gorm:"uniqueIndex;size:8;not null" json:"code"`

	Cities []City `gorm:"foreignKey:StateID;constraint:OnDelete:CASCADE" json:"-"`
}

type City struct {
	BaseModel
	Name    string `gorm:"not null;uniqueIndex:idx_cities_name_state" json:"name"`
	StateID string `gorm:"type:uuid;not null;uniqueIndex:idx_cities_name_state;index" json:"state_id"`

	State State `gorm:"foreignKey:StateID" json:"-"`
}
