package services

import (
	"errors"

	"craftlink/internal/appErrors"
	"craftlink/internal/logger"
	"craftlink/internal/models"
	"craftlink/internal/repositories"

	"gorm.io/gorm"
)

// VerificationService drives the artisan lifecycle: pending (unverified
// profile, inactive account) moves to active or rejected, and an admin can
// flip between those at any time. Approve and Reject are the only
// transitions, and each updates the profile's verified flag and the backing
// account's active flag as one atomic unit — the discovery predicate reads
// both independently, so a half-applied transition would leak or hide
// profiles incorrectly.
type VerificationService interface {
	Approve(artisanID string) (*models.ArtisanProfile, error)
	Reject(artisanID string) (*models.ArtisanProfile, error)
}

type verificationService struct {
	db          *gorm.DB
	artisanRepo repositories.ArtisanRepository
	userRepo    repositories.UserRepository
}

func NewVerificationService(db *gorm.DB, artisanRepo repositories.ArtisanRepository, userRepo repositories.UserRepository) VerificationService {
	return &verificationService{db: db, artisanRepo: artisanRepo, userRepo: userRepo}
}

func (s *verificationService) Approve(artisanID string) (*models.ArtisanProfile, error) {
	return s.transition(artisanID, true)
}

func (s *verificationService) Reject(artisanID string) (*models.ArtisanProfile, error) {
	return s.transition(artisanID, false)
}

func (s *verificationService) transition(artisanID string, approved bool) (*models.ArtisanProfile, error) {
	profile, err := s.artisanRepo.FindByID(s.db, artisanID)
	if err != nil {
		if errors.Is(err, repositories.ErrArtisanNotFound) {
			return nil, appErrors.ErrArtisanNotFound
		}
		return nil, appErrors.Unavailable(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.artisanRepo.SetVerified(tx, profile.ID, approved); err != nil {
			return err
		}
		return s.userRepo.SetActive(tx, profile.UserID, approved)
	})
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}

	logger.Info("artisan verification transition",
		"artisan_id", profile.ID,
		"approved", approved,
	)

	return s.artisanRepo.FindByID(s.db, artisanID)
}
