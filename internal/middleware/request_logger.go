package middleware

import (
	"time"

	"craftlink/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger records each handled request through the application logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.HTTPLog(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
