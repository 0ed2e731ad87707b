package middleware

import (
	"craftlink/internal/appErrors"
	"craftlink/internal/models"
	"craftlink/internal/repositories"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserIDKey is the context key holding the caller's user id.
const UserIDKey = "userID"

// Identity extracts the caller identity established upstream. Authentication
// and session handling live outside this service; the contract at this
// boundary is a forwarded X-User-ID header.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader("X-User-ID"); id != "" {
			c.Set(UserIDKey, id)
		}
		c.Next()
	}
}

// RequireIdentity aborts anonymous requests.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(UserIDKey); !ok {
			appErrors.HandleError(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole loads the caller and aborts unless they hold the given role on
// an active account.
func RequireRole(db *gorm.DB, userRepo repositories.UserRepository, role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := c.Get(UserIDKey)
		if !ok {
			appErrors.HandleError(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(db, id.(string))
		if err != nil {
			appErrors.HandleError(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if user.Role != role || !user.IsActive {
			appErrors.HandleError(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the caller's id, empty when anonymous.
func CurrentUserID(c *gin.Context) string {
	if id, ok := c.Get(UserIDKey); ok {
		return id.(string)
	}
	return ""
}
