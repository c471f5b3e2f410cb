package videocard

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/models"
)

// GET /cards?search=RTX&manufacturer_id=1
// Public catalog with name-substring search and manufacturer filter.
func GetCards(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.VideoCard{}).
			Preload("Manufacturer").
			Preload("Technologies")

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			query = query.Where("LOWER(model_name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}
		if mStr := c.Query("manufacturer_id"); mStr != "" {
			manufacturerID, err := strconv.ParseUint(mStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer_id"})
				return
			}
			query = query.Where("manufacturer_id = ?", manufacturerID)
		}

		var cards []models.VideoCard
		if err := query.Find(&cards).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch video cards"})
			return
		}
		c.JSON(http.StatusOK, cards)
	}
}

// GET /cards/:id
// Detail page payload: the card with manufacturer and technologies,
// plus its comments newest-first with their authors.
func GetCardByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video card ID"})
			return
		}

		var card models.VideoCard
		if err := db.Preload("Manufacturer").Preload("Technologies").First(&card, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Video card not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch video card"})
			return
		}

		var comments []models.Comment
		if err := db.Preload("User").
			Where("video_card_id = ?", id).
			Order("created_at DESC").
			Find(&comments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"card":     card,
			"comments": comments,
		})
	}
}
