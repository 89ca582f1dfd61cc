//go:build unit

package api_test

import (
	"net/http"

	"vehicle-rental/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth authenticates any request carrying an Authorization header as userID.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}
}

// optionalFakeAuth sets the identity only when an Authorization header is present.
func optionalFakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", userID)
			c.Set("user_role", user.RoleCustomer)
		}
		c.Next()
	}
}
