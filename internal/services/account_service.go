package services

import (
	"errors"

	"craftlink/internal/appErrors"
	"craftlink/internal/auth"
	"craftlink/internal/logger"
	"craftlink/internal/models"
	"craftlink/internal/repositories"
	"craftlink/internal/services/dto"

	"gorm.io/gorm"
)

// AccountService handles registration. Clients come out active immediately;
// artisans come out pending: account inactive and profile unverified, waiting
// on the verification state machine.
type AccountService interface {
	RegisterClient(req *dto.RegisterClientRequest) (*models.User, error)
	RegisterArtisan(req *dto.RegisterArtisanRequest) (*models.User, error)
}

type accountService struct {
	db          *gorm.DB
	userRepo    repositories.UserRepository
	artisanRepo repositories.ArtisanRepository
	catalogRepo repositories.CatalogRepository
}

func NewAccountService(db *gorm.DB, userRepo repositories.UserRepository, artisanRepo repositories.ArtisanRepository, catalogRepo repositories.CatalogRepository) AccountService {
	return &accountService{
		db:          db,
		userRepo:    userRepo,
		artisanRepo: artisanRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *accountService) RegisterClient(req *dto.RegisterClientRequest) (*models.User, error) {
	user, err := s.buildUser(req, models.UserRoleClient, true)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(s.db, user); err != nil {
		return nil, mapUserCreateError(err)
	}

	logger.Info("client registered", "user_id", user.ID)
	return user, nil
}

func (s *accountService) RegisterArtisan(req *dto.RegisterArtisanRequest) (*models.User, error) {
	category, err := s.catalogRepo.FindCategoryByID(s.db, req.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, appErrors.ErrCategoryNotFound
		}
		return nil, appErrors.Unavailable(err)
	}

	state, err := s.catalogRepo.FindStateByID(s.db, req.StateID)
	if err != nil {
		if errors.Is(err, repositories.ErrStateNotFound) {
			return nil, appErrors.ErrStateNotFound
		}
		return nil, appErrors.Unavailable(err)
	}

	city, err := s.catalogRepo.FindCityByID(s.db, req.CityID)
	if err != nil {
		if errors.Is(err, repositories.ErrCityNotFound) {
			return nil, appErrors.ErrCityNotFound
		}
		return nil, appErrors.Unavailable(err)
	}
	if city.StateID != state.ID {
		return nil, appErrors.ValidationError(map[string]string{
			"city_id": "city does not belong to the selected state",
		})
	}

	skills, err := s.resolveSkills(category.ID, req.SkillIDs)
	if err != nil {
		return nil, err
	}

	user, err := s.buildUser(&req.RegisterClientRequest, models.UserRoleArtisan, false)
	if err != nil {
		return nil, err
	}

	availability := models.AvailabilityAvailable
	if req.Availability != "" {
		availability = models.Availability(req.Availability)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		profile := &models.ArtisanProfile{
			UserID:            user.ID,
			CategoryID:        category.ID,
			Bio:               req.Bio,
			HourlyRate:        req.HourlyRate,
			StateID:           state.ID,
			CityID:            city.ID,
			Availability:      availability,
			IsVerified:        false,
			YearsOfExperience: req.YearsOfExperience,
		}
		if err := s.artisanRepo.Create(tx, profile); err != nil {
			return err
		}
		if len(skills) > 0 {
			return s.artisanRepo.ReplaceSkills(tx, profile, skills)
		}
		return nil
	})
	if err != nil {
		return nil, mapUserCreateError(err)
	}

	logger.Info("artisan registered, pending approval", "user_id", user.ID)
	return user, nil
}

// resolveSkills keeps only skills belonging to the chosen category; callers
// expect the skill set to stay a subset of the category's skills even though
// storage does not enforce it.
func (s *accountService) resolveSkills(categoryID string, skillIDs []string) ([]models.Skill, error) {
	if len(skillIDs) == 0 {
		return nil, nil
	}

	found, err := s.catalogRepo.FindSkillsByIDs(s.db, skillIDs)
	if err != nil {
		return nil, appErrors.Unavailable(err)
	}

	skills := make([]models.Skill, 0, len(found))
	for _, skill := range found {
		if skill.CategoryID == categoryID {
			skills = append(skills, skill)
		}
	}
	return skills, nil
}

func (s *accountService) buildUser(req *dto.RegisterClientRequest, role models.UserRole, active bool) (*models.User, error) {
	if _, err := s.userRepo.FindByUsername(s.db, req.Username); err == nil {
		return nil, appErrors.ErrUsernameTaken
	}
	if _, err := s.userRepo.FindByEmail(s.db, req.Email); err == nil {
		return nil, appErrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		IsActive:     active,
	}, nil
}

// mapUserCreateError covers the race where the pre-checks pass but the unique
// constraint fires on insert.
func mapUserCreateError(err error) error {
	if errors.Is(err, repositories.ErrUserAlreadyExists) {
		return appErrors.ErrEmailAlreadyExists
	}
	var appErr *appErrors.AppError
	if appErrors.As(err, &appErr) {
		return appErr
	}
	return appErrors.Unavailable(err)
}
