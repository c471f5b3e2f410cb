package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/config"
)

// SetupRoutes is the single entry point that wires up the public,
// auth, user and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.SugaredLogger) {
	// Public catalog browsing (no session required)
	SetupCatalogRoutes(r, db, cfg)

	// Register / login
	SetupAuthRoutes(r, db, cfg)

	// Customer routes (cart, checkout, order history)
	SetupUserRoutes(r, db, cfg)

	// Admin back-office
	SetupAdminRoutes(r, db, cfg, logger)
}
