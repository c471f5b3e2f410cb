package home

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/models"
	"github.com/UltraNerdDev/GPUStore/seed"
)

// GET /admin/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			totalCards         int64
			totalOrders        int64
			totalManufacturers int64
		)
		if err := db.Model(&models.VideoCard{}).Count(&totalCards).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		if err := db.Model(&models.Manufacturer{}).Count(&totalManufacturers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		var orders []models.Order
		if err := db.Select("total_price").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		revenue := decimal.Zero
		for _, o := range orders {
			revenue = revenue.Add(o.TotalPrice)
		}

		c.JSON(http.StatusOK, gin.H{
			"total_video_cards":   totalCards,
			"total_orders":        totalOrders,
			"total_manufacturers": totalManufacturers,
			"total_revenue":       revenue.StringFixed(2),
		})
	}
}

// POST /admin/seed
// Loads the demo catalog. Safe to call more than once.
func SeedDemoData(db *gorm.DB, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := seed.Run(db); err != nil {
			logger.Errorw("demo seed failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load demo data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Demo data loaded"})
	}
}

// POST /admin/clear
// Irreversible wipe of catalog and order data. Children first, then
// parents, all in one transaction. Errors come back as a generic
// failure message instead of crashing the request.
func ClearCatalog(db *gorm.DB, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, model := range []interface{}{
				&models.CardTechnology{},
				&models.OrderItem{},
				&models.CartItem{},
				&models.Comment{},
				&models.VideoCard{},
				&models.Manufacturer{},
				&models.Technology{},
				&models.Order{},
			} {
				if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			logger.Errorw("catalog clear failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear catalog data"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "All catalog and order data cleared"})
	}
}
