package handlers

import (
	"net/http"
	"strconv"

	"craftlink/internal/appErrors"
	"craftlink/internal/middleware"
	"craftlink/internal/services"
	"craftlink/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/artisans/:artisanId/reviews", h.ListArtisanReviews)

	authed := r.Group("")
	authed.Use(middleware.RequireIdentity())
	{
		authed.POST("/artisans/:artisanId/reviews", h.SubmitReview)
		authed.POST("/reviews/:reviewId/helpful", h.VoteHelpful)
		authed.POST("/reviews/:reviewId/report", h.ReportReview)
	}
}

func (h *ReviewHandler) ListArtisanReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))

	result, err := h.reviewService.ListArtisanReviews(c.Param("artisanId"), c.Query("rating"), page)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req dto.SubmitReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.SubmitReview(middleware.CurrentUserID(c), c.Param("artisanId"), &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) VoteHelpful(c *gin.Context) {
	var req dto.VoteHelpfulRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	count, err := h.reviewService.VoteHelpful(c.Param("reviewId"), middleware.CurrentUserID(c), *req.IsHelpful)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VoteHelpfulResponse{
		Success:      true,
		HelpfulCount: count,
	})
}

func (h *ReviewHandler) ReportReview(c *gin.Context) {
	var req dto.ReportReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	report, err := h.reviewService.ReportReview(c.Param("reviewId"), middleware.CurrentUserID(c), &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}
