package routes

import (
	"craftlink/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AccountHandler.RegisterRoutes(api)
		appHandlers.CatalogHandler.RegisterRoutes(api)
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.ArtisanHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
	}
}
