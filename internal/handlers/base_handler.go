package handlers

import (
	"fmt"
	"strconv"

	"craftlink/internal/appErrors"
	"craftlink/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the body and runs the domain validation rules.
// Returns false after writing the error response.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		appErrors.HandleValidationError(c, err)
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
		} else {
			appErrors.HandleValidationError(c, err)
		}
		return false
	}

	return true
}

// parsePage parses a 1-based page number.
func parsePage(raw string) (int, error) {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if page < 1 {
		return 0, fmt.Errorf("page must be >= 1, got %d", page)
	}
	return page, nil
}
