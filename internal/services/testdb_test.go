package services

import (
	"fmt"
	"testing"

	"craftlink/database"
	"craftlink/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the production schema
// and the same TranslateError behavior as the real connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newTestContainer(t *testing.T) (*gorm.DB, *ServiceContainer) {
	t.Helper()
	db := newTestDB(t)
	return db, NewServiceContainer(db)
}

type catalogFixture struct {
	Category models.Category
	Skills   []models.Skill
	State    models.State
	City     models.City
}

func seedTestCatalog(t *testing.T, db *gorm.DB, categoryName string, skillNames ...string) catalogFixture {
	t.Helper()
	tag := uuid.NewString()[:8]

	fx := catalogFixture{
		Category: models.Category{Name: categoryName + "-" + tag},
		State:    models.State{Name: "State-" + tag, Code: tag},
	}
	require.NoError(t, db.Create(&fx.Category).Error)
	require.NoError(t, db.Create(&fx.State).Error)

	fx.City = models.City{Name: "City-" + tag, StateID: fx.State.ID}
	require.NoError(t, db.Create(&fx.City).Error)

	for _, name := range skillNames {
		skill := models.Skill{Name: name + "-" + tag, CategoryID: fx.Category.ID}
		require.NoError(t, db.Create(&skill).Error)
		fx.Skills = append(fx.Skills, skill)
	}
	return fx
}

func createTestUser(t *testing.T, db *gorm.DB, role models.UserRole, active bool) *models.User {
	t.Helper()
	tag := uuid.NewString()[:8]

	user := &models.User{
		Username:     "user-" + tag,
		Email:        fmt.Sprintf("%s@example.test", tag),
		PasswordHash: "not-a-real-hash",
		FirstName:    "Ada",
		LastName:     "Okafor",
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestArtisan(t *testing.T, db *gorm.DB, fx catalogFixture, verified, active bool, rate float64) *models.ArtisanProfile {
	t.Helper()

	user := createTestUser(t, db, models.UserRoleArtisan, active)
	profile := &models.ArtisanProfile{
		UserID:     user.ID,
		CategoryID: fx.Category.ID,
		Bio:        "Experienced tradesperson",
		HourlyRate: rate,
		StateID:    fx.State.ID,
		CityID:     fx.City.ID,
		IsVerified: verified,
	}
	require.NoError(t, db.Create(profile).Error)
	profile.User = *user
	return profile
}

// rateArtisan files one review per rating, each from a fresh client account.
func rateArtisan(t *testing.T, db *gorm.DB, artisanID string, ratings ...int) {
	t.Helper()
	for _, rating := range ratings {
		client := createTestUser(t, db, models.UserRoleClient, true)
		review := &models.Review{
			ClientID:  client.ID,
			ArtisanID: artisanID,
			Rating:    rating,
			Comment:   "Solid work, would hire again",
		}
		require.NoError(t, db.Create(review).Error)
	}
}
