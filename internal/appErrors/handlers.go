package appErrors

import (
	"craftlink/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an error response on a Gin context, wrapping unknown
// errors as internal.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.Error("server error", "path", c.Request.URL.Path, "error", appErr.Error())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleValidationError maps binding/validation failures to the standard
// validation envelope.
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ErrValidationFailed.WithDetails(gin.H{"details": err.Error()}))
}
