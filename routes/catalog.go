package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	commentController "github.com/UltraNerdDev/GPUStore/controllers/comment"
	videocardController "github.com/UltraNerdDev/GPUStore/controllers/videocard"

	"github.com/UltraNerdDev/GPUStore/config"
	"github.com/UltraNerdDev/GPUStore/middleware"
)

// SetupCatalogRoutes registers the public "/cards/*" endpoints plus the
// authenticated comment action. Comments need a session but not a role
// guard: the handler itself refuses admins with 403.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	cards := r.Group("/cards")
	{
		cards.GET("", videocardController.GetCards(db))          // GET /cards?search=&manufacturer_id=
		cards.GET("/:id", videocardController.GetCardByID(db))   // GET /cards/:id

		cards.POST("/:id/comments",
			middleware.ValidateToken(cfg.JWTSecret),
			commentController.AddComment(db),
		)
	}
}
