package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/auth"
	"github.com/UltraNerdDev/GPUStore/config"
)

// SetupAuthRoutes registers the "/auth/*" endpoints. No middleware.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db, cfg.JWTSecret))
	}
}
