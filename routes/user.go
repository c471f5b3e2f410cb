package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartController "github.com/UltraNerdDev/GPUStore/controllers/cart"
	orderController "github.com/UltraNerdDev/GPUStore/controllers/order"

	"github.com/UltraNerdDev/GPUStore/config"
	"github.com/UltraNerdDev/GPUStore/middleware"
)

// SetupUserRoutes registers the "/user/*" endpoints. Requires a session
// and a customer role; admins are redirected to the home view.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.CustomerOnly())
	{
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartController.GetCart(db))                // GET    /user/cart
			cartGroup.POST("", cartController.AddToCart(db))             // POST   /user/cart
			cartGroup.POST("/adjust", cartController.AdjustQuantity(db)) // POST   /user/cart/adjust
			cartGroup.DELETE("/:id", cartController.RemoveCartItem(db))  // DELETE /user/cart/:id
		}

		userGroup.GET("/checkout", orderController.Checkout(db))    // GET  /user/checkout
		userGroup.POST("/orders", orderController.ConfirmOrder(db)) // POST /user/orders
		userGroup.GET("/orders", orderController.MyOrders(db))      // GET  /user/orders
	}
}
