package videocard

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/models"
)

// PUT /admin/cards/:id
// Accepts the same multipart form as CreateCard; empty fields keep
// their current value. The technology selection replaces the existing
// set wholesale: all old links are deleted and the submitted ones
// inserted. Simpler than diffing and cheap at this table size.
func UpdateCard(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video card ID"})
			return
		}

		var card models.VideoCard
		if err := db.First(&card, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Video card not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch video card"})
			return
		}

		if v := strings.TrimSpace(c.PostForm("model_name")); v != "" {
			card.ModelName = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"price": "Invalid price"}})
				return
			}
			card.Price = price
		}
		if v := c.PostForm("manufacturer_id"); v != "" {
			manufacturerID, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"manufacturer_id": "Invalid manufacturer_id"}})
				return
			}
			card.ManufacturerID = uint(manufacturerID)
		}
		if v := c.PostForm("description"); v != "" {
			if len(v) > 2000 {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"description": "Description cannot exceed 2000 characters"}})
				return
			}
			card.Description = v
		}

		if fieldErrors := validateCard(card.ModelName, card.Price); len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
			return
		}

		// Duplicate check excluding the card being edited, otherwise an
		// unchanged name would collide with itself.
		var count int64
		if err := db.Model(&models.VideoCard{}).
			Where("LOWER(model_name) = ? AND manufacturer_id = ? AND id <> ?",
				strings.ToLower(card.ModelName), card.ManufacturerID, card.ID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for duplicates"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"model_name": "Another video card with this name already exists"}})
			return
		}

		if file, err := c.FormFile("image"); err == nil {
			filename, err := saveImage(c, file, uploadDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			card.ImageURL = filename
		}

		resync := false
		var techIDs []uint
		if raw, ok := c.GetPostForm("technology_ids"); ok {
			resync = true
			techIDs, err = parseTechnologyIDs(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"technology_ids": err.Error()}})
				return
			}
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&card).Error; err != nil {
				return err
			}
			if !resync {
				return nil
			}
			if err := tx.Where("video_card_id = ?", card.ID).Delete(&models.CardTechnology{}).Error; err != nil {
				return err
			}
			for _, techID := range techIDs {
				link := models.CardTechnology{VideoCardID: card.ID, TechnologyID: techID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video card"})
			return
		}

		c.JSON(http.StatusOK, card)
	}
}
