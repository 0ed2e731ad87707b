package models

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Role         UserRole `gorm:"type:varchar(10);not null;default:'client'" json:"role"`
	PhoneNumber  string   `json:"phone_number,omitempty"`
	// IsActive gates login and, for artisans, discovery. Artisan accounts start
	// inactive and are switched on by verification approval.
	IsActive bool `gorm:"default:true" json:"is_active"`

	// Relations
	ArtisanProfile *ArtisanProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) IsClient() bool  { return u.Role == UserRoleClient }
func (u *User) IsArtisan() bool { return u.Role == UserRoleArtisan }
func (u *User) IsAdmin() bool   { return u.Role == UserRoleAdmin }

func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
