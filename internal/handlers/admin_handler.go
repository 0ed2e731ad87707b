package handlers

import (
	"net/http"

	"craftlink/internal/appErrors"
	"craftlink/internal/middleware"
	"craftlink/internal/models"
	"craftlink/internal/repositories"
	"craftlink/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler exposes the verification transitions and the report queue.
type AdminHandler struct {
	*BaseHandler
	db                  *gorm.DB
	userRepo            repositories.UserRepository
	verificationService services.VerificationService
	reviewService       services.ReviewService
}

func NewAdminHandler(base *BaseHandler, db *gorm.DB, userRepo repositories.UserRepository, verificationService services.VerificationService, reviewService services.ReviewService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:         base,
		db:                  db,
		userRepo:            userRepo,
		verificationService: verificationService,
		reviewService:       reviewService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireIdentity(), middleware.RequireRole(h.db, h.userRepo, models.UserRoleAdmin))
	{
		admin.POST("/artisans/:artisanId/approve", h.ApproveArtisan)
		admin.POST("/artisans/:artisanId/reject", h.RejectArtisan)
		admin.GET("/reports", h.ListReports)
		admin.POST("/reports/:reportId/resolve", h.ResolveReport)
	}
}

func (h *AdminHandler) ApproveArtisan(c *gin.Context) {
	profile, err := h.verificationService.Approve(c.Param("artisanId"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *AdminHandler) RejectArtisan(c *gin.Context) {
	profile, err := h.verificationService.Reject(c.Param("artisanId"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	var resolved *bool
	switch c.Query("resolved") {
	case "true":
		v := true
		resolved = &v
	case "false":
		v := false
		resolved = &v
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := parsePage(raw); err == nil {
			page = parsed
		}
	}

	result, err := h.reviewService.ListReports(resolved, page)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) ResolveReport(c *gin.Context) {
	report, err := h.reviewService.ResolveReport(c.Param("reportId"), middleware.CurrentUserID(c))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
