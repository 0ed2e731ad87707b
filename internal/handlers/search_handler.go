package handlers

import (
	"net/http"

	"craftlink/internal/appErrors"
	"craftlink/internal/services"
	"craftlink/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{BaseHandler: base, searchService: searchService}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/artisans", h.SearchArtisans)
}

// SearchArtisans serves the discovery query. All parameters are optional
// strings; the service degrades gracefully on anything malformed, so this
// endpoint never rejects a query.
func (h *SearchHandler) SearchArtisans(c *gin.Context) {
	var req dto.ArtisanSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		appErrors.HandleValidationError(c, err)
		return
	}

	result, err := h.searchService.SearchArtisans(&req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
