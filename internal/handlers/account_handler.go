package handlers

import (
	"net/http"

	"craftlink/internal/appErrors"
	"craftlink/internal/services"
	"craftlink/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	*BaseHandler
	accountService services.AccountService
}

func NewAccountHandler(base *BaseHandler, accountService services.AccountService) *AccountHandler {
	return &AccountHandler{BaseHandler: base, accountService: accountService}
}

func (h *AccountHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register/client", h.RegisterClient)
		auth.POST("/register/artisan", h.RegisterArtisan)
	}
}

func (h *AccountHandler) RegisterClient(c *gin.Context) {
	var req dto.RegisterClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.accountService.RegisterClient(&req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// RegisterArtisan creates the account and the profile in one step; the
// artisan enters the verification queue pending and invisible to discovery.
func (h *AccountHandler) RegisterArtisan(c *gin.Context) {
	var req dto.RegisterArtisanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.accountService.RegisterArtisan(&req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
