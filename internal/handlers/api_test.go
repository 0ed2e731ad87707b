package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"craftlink/database"
	"craftlink/internal/handlers"
	"craftlink/internal/middleware"
	"craftlink/internal/models"
	"craftlink/internal/routes"
	"craftlink/internal/services"
	"craftlink/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type apiTest struct {
	db     *gorm.DB
	router *gin.Engine
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	container := services.NewServiceContainer(db)
	appHandlers := handlers.NewAppHandlers(db, container, validator.New())

	router := gin.New()
	router.Use(middleware.Identity())
	routes.RegisterRoutes(router, appHandlers)

	return &apiTest{db: db, router: router}
}

// request sends a JSON request, impersonating userID via the identity header
// when non-empty.
func (a *apiTest) request(t *testing.T, method, path, userID string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec, rec.Body.String()
}

func (a *apiTest) createUser(t *testing.T, role models.UserRole, active bool) *models.User {
	t.Helper()
	tag := uuid.NewString()[:8]
	user := &models.User{
		Username:     "user-" + tag,
		Email:        fmt.Sprintf("%s@example.test", tag),
		PasswordHash: "not-a-real-hash",
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, a.db.Create(user).Error)
	return user
}

func (a *apiTest) seedCatalog(t *testing.T, categoryName string) (models.Category, models.State, models.City) {
	t.Helper()
	tag := uuid.NewString()[:8]

	category := models.Category{Name: categoryName + "-" + tag}
	require.NoError(t, a.db.Create(&category).Error)
	state := models.State{Name: "State-" + tag, Code: tag}
	require.NoError(t, a.db.Create(&state).Error)
	city := models.City{Name: "City-" + tag, StateID: state.ID}
	require.NoError(t, a.db.Create(&city).Error)
	return category, state, city
}

func (a *apiTest) createArtisan(t *testing.T, verified, active bool) *models.ArtisanProfile {
	t.Helper()
	category, state, city := a.seedCatalog(t, "Plumbing")
	user := a.createUser(t, models.UserRoleArtisan, active)
	profile := &models.ArtisanProfile{
		UserID:     user.ID,
		CategoryID: category.ID,
		HourlyRate: 40,
		StateID:    state.ID,
		CityID:     city.ID,
		IsVerified: verified,
	}
	require.NoError(t, a.db.Create(profile).Error)
	return profile
}

func TestSearchEndpoint(t *testing.T) {
	api := newAPITest(t)
	visible := api.createArtisan(t, true, true)
	api.createArtisan(t, false, true)

	rec, body := api.request(t, http.MethodGet, "/api/v1/artisans?sort_by=rating&min_rate=abc", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items      []models.ArtisanProfile `json:"items"`
		TotalCount int64                   `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, visible.ID, resp.Items[0].ID)
	assert.Equal(t, int64(1), resp.TotalCount)
}

func TestSubmitReviewEndpoint(t *testing.T) {
	api := newAPITest(t)
	artisan := api.createArtisan(t, true, true)
	client := api.createUser(t, models.UserRoleClient, true)

	path := "/api/v1/artisans/" + artisan.ID + "/reviews"
	payload := map[string]interface{}{"rating": 5, "comment": "Excellent work"}

	// Anonymous callers are rejected before the body is considered.
	rec, _ := api.request(t, http.MethodPost, path, "", payload)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, body := api.request(t, http.MethodPost, path, client.ID, payload)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, body, "Excellent work")

	rec, body = api.request(t, http.MethodPost, path, client.ID, payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, body, "DUPLICATE_REVIEW")

	// The public list shows the single review.
	rec, body = api.request(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"total_count":1`)
}

func TestSubmitReviewValidation(t *testing.T) {
	api := newAPITest(t)
	artisan := api.createArtisan(t, true, true)
	client := api.createUser(t, models.UserRoleClient, true)

	path := "/api/v1/artisans/" + artisan.ID + "/reviews"

	rec, body := api.request(t, http.MethodPost, path, client.ID, map[string]interface{}{
		"rating": 6, "comment": "Off the scale",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, "VALIDATION_FAILED")

	rec, _ = api.request(t, http.MethodPost, path, client.ID, map[string]interface{}{
		"rating": 4,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVoteHelpfulEndpoint(t *testing.T) {
	api := newAPITest(t)
	artisan := api.createArtisan(t, true, true)
	client := api.createUser(t, models.UserRoleClient, true)
	voter := api.createUser(t, models.UserRoleClient, true)

	rec, body := api.request(t, http.MethodPost, "/api/v1/artisans/"+artisan.ID+"/reviews", client.ID,
		map[string]interface{}{"rating": 4, "comment": "Good"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var review models.Review
	require.NoError(t, json.Unmarshal([]byte(body), &review))

	votePath := "/api/v1/reviews/" + review.ID + "/helpful"
	rec, body = api.request(t, http.MethodPost, votePath, voter.ID, map[string]interface{}{"is_helpful": true})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"helpful_count":1`)

	rec, body = api.request(t, http.MethodPost, votePath, voter.ID, map[string]interface{}{"is_helpful": false})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"helpful_count":0`)
}

func TestReportReviewEndpoint(t *testing.T) {
	api := newAPITest(t)
	artisan := api.createArtisan(t, true, true)
	client := api.createUser(t, models.UserRoleClient, true)
	reporter := api.createUser(t, models.UserRoleClient, true)

	rec, body := api.request(t, http.MethodPost, "/api/v1/artisans/"+artisan.ID+"/reviews", client.ID,
		map[string]interface{}{"rating": 1, "comment": "Sketchy"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var review models.Review
	require.NoError(t, json.Unmarshal([]byte(body), &review))

	reportPath := "/api/v1/reviews/" + review.ID + "/report"

	rec, body = api.request(t, http.MethodPost, reportPath, reporter.ID, map[string]interface{}{"reason": "harassment"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, "VALIDATION_FAILED")

	rec, _ = api.request(t, http.MethodPost, reportPath, reporter.ID, map[string]interface{}{"reason": "spam"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, body = api.request(t, http.MethodPost, reportPath, reporter.ID, map[string]interface{}{"reason": "fake"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, body, "DUPLICATE_REPORT")
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	api := newAPITest(t)
	pending := api.createArtisan(t, false, false)
	client := api.createUser(t, models.UserRoleClient, true)
	admin := api.createUser(t, models.UserRoleAdmin, true)

	approvePath := "/api/v1/admin/artisans/" + pending.ID + "/approve"

	rec, _ := api.request(t, http.MethodPost, approvePath, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = api.request(t, http.MethodPost, approvePath, client.ID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, body := api.request(t, http.MethodPost, approvePath, admin.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"is_verified":true`)

	// Once approved the artisan shows up in discovery.
	rec, body = api.request(t, http.MethodGet, "/api/v1/artisans", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, pending.ID)
}

func TestArtisanDetailEndpoint(t *testing.T) {
	api := newAPITest(t)
	artisan := api.createArtisan(t, true, true)
	hidden := api.createArtisan(t, false, true)

	rec, body := api.request(t, http.MethodGet, "/api/v1/artisans/"+artisan.ID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"profile_views":1`)

	rec, _ = api.request(t, http.MethodGet, "/api/v1/artisans/"+hidden.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	api := newAPITest(t)
	category, state, city := api.seedCatalog(t, "Plumbing")
	skill := models.Skill{Name: "Leak Repair", CategoryID: category.ID}
	require.NoError(t, api.db.Create(&skill).Error)

	rec, body := api.request(t, http.MethodGet, "/api/v1/catalog/categories", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, category.Name)

	rec, body = api.request(t, http.MethodGet, "/api/v1/catalog/categories/"+category.ID+"/skills", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Leak Repair")

	rec, body = api.request(t, http.MethodGet, "/api/v1/catalog/states/"+state.ID+"/cities", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, city.Name)

	rec, _ = api.request(t, http.MethodGet, "/api/v1/catalog/states/does-not-exist/cities", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterEndpoints(t *testing.T) {
	api := newAPITest(t)
	category, state, city := api.seedCatalog(t, "Plumbing")

	rec, body := api.request(t, http.MethodPost, "/api/v1/auth/register/client", "", map[string]interface{}{
		"username": "amina",
		"email":    "amina@example.test",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, body, `"is_active":true`)
	assert.NotContains(t, body, "secret123")

	rec, body = api.request(t, http.MethodPost, "/api/v1/auth/register/artisan", "", map[string]interface{}{
		"username":    "tunde",
		"email":       "tunde@example.test",
		"password":    "secret123",
		"category_id": category.ID,
		"state_id":    state.ID,
		"city_id":     city.ID,
		"hourly_rate": 45,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, body, `"is_active":false`)

	// Bad email is rejected by validation.
	rec, body = api.request(t, http.MethodPost, "/api/v1/auth/register/client", "", map[string]interface{}{
		"username": "bisi",
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, "VALIDATION_FAILED")
}
