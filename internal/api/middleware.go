package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawhub/pet-care-backend/internal/auth"
	"github.com/pawhub/pet-care-backend/internal/user"
)

// RequireVet ensures the authenticated user is a veterinarian.
// It MUST be used after auth.AuthRequired middleware.
func RequireVet(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// The role claim in the token could be stale, so check the
		// database rather than trusting it.
		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if u.Role != user.RoleVet {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: vet access required"})
			return
		}

		c.Next()
	}
}
