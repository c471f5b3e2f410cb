package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	homeController "github.com/UltraNerdDev/GPUStore/controllers/home"
	manufacturerController "github.com/UltraNerdDev/GPUStore/controllers/manufacturer"
	orderController "github.com/UltraNerdDev/GPUStore/controllers/order"
	technologyController "github.com/UltraNerdDev/GPUStore/controllers/technology"
	videocardController "github.com/UltraNerdDev/GPUStore/controllers/videocard"

	"github.com/UltraNerdDev/GPUStore/config"
	"github.com/UltraNerdDev/GPUStore/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. Requires a
// session with the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.SugaredLogger) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin())
	{
		manufacturerAdmin := adminGroup.Group("/manufacturers")
		{
			manufacturerAdmin.GET("", manufacturerController.GetAll(db))
			manufacturerAdmin.POST("", manufacturerController.Create(db))
			manufacturerAdmin.PUT("/:id", manufacturerController.Update(db))
			manufacturerAdmin.DELETE("/:id", manufacturerController.Delete(db))
		}

		technologyAdmin := adminGroup.Group("/technologies")
		{
			technologyAdmin.GET("", technologyController.GetAll(db))
			technologyAdmin.POST("", technologyController.Create(db))
			technologyAdmin.PUT("/:id", technologyController.Update(db))
			technologyAdmin.DELETE("/:id", technologyController.Delete(db))
		}

		cardAdmin := adminGroup.Group("/cards")
		{
			cardAdmin.GET("", videocardController.GetCards(db))
			cardAdmin.POST("", videocardController.CreateCard(db, cfg.UploadDir))
			cardAdmin.PUT("/:id", videocardController.UpdateCard(db, cfg.UploadDir))
			cardAdmin.DELETE("/:id", videocardController.DeleteCard(db))
			cardAdmin.GET("/export", videocardController.ExportCardsToExcel(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderController.GetAllOrders(db))
			orderAdmin.GET("/:id", orderController.GetOrderByID(db))
			orderAdmin.PUT("/:id/status", orderController.UpdateOrderStatus(db))
		}

		adminGroup.GET("/dashboard", homeController.Dashboard(db))
		adminGroup.POST("/seed", homeController.SeedDemoData(db, logger))
		adminGroup.POST("/clear", homeController.ClearCatalog(db, logger))
	}
}
