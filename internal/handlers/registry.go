package handlers

import (
	"craftlink/internal/repositories"
	"craftlink/internal/services"
	"craftlink/internal/validator"

	"gorm.io/gorm"
)

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	AccountHandler *AccountHandler
	AdminHandler   *AdminHandler
	ArtisanHandler *ArtisanHandler
	CatalogHandler *CatalogHandler
	ReviewHandler  *ReviewHandler
	SearchHandler  *SearchHandler
}

func NewAppHandlers(db *gorm.DB, container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	userRepo := repositories.NewUserRepository()
	catalogRepo := repositories.NewCatalogRepository()

	return &AppHandlers{
		AccountHandler: NewAccountHandler(base, container.AccountService),
		AdminHandler:   NewAdminHandler(base, db, userRepo, container.VerificationService, container.ReviewService),
		ArtisanHandler: NewArtisanHandler(base, container.ArtisanService),
		CatalogHandler: NewCatalogHandler(base, db, catalogRepo),
		ReviewHandler:  NewReviewHandler(base, container.ReviewService),
		SearchHandler:  NewSearchHandler(base, container.SearchService),
	}
}
