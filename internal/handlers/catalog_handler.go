package handlers

import (
	"net/http"

	"craftlink/internal/appErrors"
	"craftlink/internal/repositories"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogHandler serves the reference catalog as read-only lookup data.
type CatalogHandler struct {
	*BaseHandler
	db          *gorm.DB
	catalogRepo repositories.CatalogRepository
}

func NewCatalogHandler(base *BaseHandler, db *gorm.DB, catalogRepo repositories.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, db: db, catalogRepo: catalogRepo}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/categories", h.ListCategories)
		catalog.GET("/categories/:categoryId/skills", h.ListSkills)
		catalog.GET("/states", h.ListStates)
		catalog.GET("/states/:stateId/cities", h.ListCities)
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogRepo.ListCategories(h.db)
	if err != nil {
		appErrors.HandleError(c, appErrors.Unavailable(err))
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) ListSkills(c *gin.Context) {
	if _, err := h.catalogRepo.FindCategoryByID(h.db, c.Param("categoryId")); err != nil {
		appErrors.HandleError(c, appErrors.ErrCategoryNotFound)
		return
	}

	skills, err := h.catalogRepo.ListSkillsByCategory(h.db, c.Param("categoryId"))
	if err != nil {
		appErrors.HandleError(c, appErrors.Unavailable(err))
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *CatalogHandler) ListStates(c *gin.Context) {
	states, err := h.catalogRepo.ListStates(h.db)
	if err != nil {
		appErrors.HandleError(c, appErrors.Unavailable(err))
		return
	}
	c.JSON(http.StatusOK, states)
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	if _, err := h.catalogRepo.FindStateByID(h.db, c.Param("stateId")); err != nil {
		appErrors.HandleError(c, appErrors.ErrStateNotFound)
		return
	}

	cities, err := h.catalogRepo.ListCitiesByState(h.db, c.Param("stateId"))
	if err != nil {
		appErrors.HandleError(c, appErrors.Unavailable(err))
		return
	}
	c.JSON(http.StatusOK, cities)
}
