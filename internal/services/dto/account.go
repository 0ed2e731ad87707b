package dto

type RegisterClientRequest struct {
	Username    string `json:"username" binding:"required" validate:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required" validate:"required,email"`
	Password    string `json:"password" binding:"required" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=15"`
}

type RegisterArtisanRequest struct {
	RegisterClientRequest
	CategoryID        string   `json:"category_id" binding:"required" validate:"required"`
	SkillIDs          []string `json:"skill_ids"`
	StateID           string   `json:"state_id" binding:"required" validate:"required"`
	CityID            string   `json:"city_id" binding:"required" validate:"required"`
	Bio               string   `json:"bio" validate:"max=1000"`
	HourlyRate        float64  `json:"hourly_rate" binding:"required" validate:"required,min=0.01"`
	YearsOfExperience int      `json:"years_of_experience" validate:"min=0,max=50"`
	Availability      string   `json:"availability" validate:"is-availability"`
}
