package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects non-admin callers with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentRole(c).IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CustomerOnly sends admins back to the home view. Admins have no cart
// and never see checkout.
func CustomerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRole(c).IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
