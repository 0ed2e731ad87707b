package handlers

import (
	"net/http"

	"craftlink/internal/appErrors"
	"craftlink/internal/services"

	"github.com/gin-gonic/gin"
)

type ArtisanHandler struct {
	*BaseHandler
	artisanService services.ArtisanService
}

func NewArtisanHandler(base *BaseHandler, artisanService services.ArtisanService) *ArtisanHandler {
	return &ArtisanHandler{BaseHandler: base, artisanService: artisanService}
}

func (h *ArtisanHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/artisans/:artisanId", h.GetArtisan)
	r.GET("/home", h.HomeStats)
}

// GetArtisan is the direct profile read: eligible profiles only, and each
// read increments the view counter.
func (h *ArtisanHandler) GetArtisan(c *gin.Context) {
	detail, err := h.artisanService.GetArtisanDetail(c.Param("artisanId"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ArtisanHandler) HomeStats(c *gin.Context) {
	stats, err := h.artisanService.HomeStats()
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
