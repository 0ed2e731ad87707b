package services

import (
	"craftlink/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer bundles all services for wiring.
type ServiceContainer struct {
	AccountService      AccountService
	ArtisanService      ArtisanService
	ReputationService   ReputationService
	ReviewService       ReviewService
	SearchService       SearchService
	VerificationService VerificationService
}

func NewServiceContainer(db *gorm.DB) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	catalogRepo := repositories.NewCatalogRepository()
	artisanRepo := repositories.NewArtisanRepository()
	reviewRepo := repositories.NewReviewRepository()

	reputation := NewReputationService(db, reviewRepo)

	return &ServiceContainer{
		AccountService:      NewAccountService(db, userRepo, artisanRepo, catalogRepo),
		ArtisanService:      NewArtisanService(db, artisanRepo, reviewRepo, catalogRepo),
		ReputationService:   reputation,
		ReviewService:       NewReviewService(db, reviewRepo, userRepo, artisanRepo),
		SearchService:       NewSearchService(db, artisanRepo),
		VerificationService: NewVerificationService(db, artisanRepo, userRepo),
	}
}
