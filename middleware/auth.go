package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/UltraNerdDev/GPUStore/models"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// ValidateToken checks the Bearer token and puts the user id and role
// into the gin context for downstream handlers.
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		userID, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the context.
func CurrentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// CurrentRole returns the authenticated user's role from the context.
func CurrentRole(c *gin.Context) models.Role {
	v, ok := c.Get(ContextRole)
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return models.Role(role)
}
