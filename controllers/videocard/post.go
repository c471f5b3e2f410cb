package videocard

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/middleware"
	"github.com/UltraNerdDev/GPUStore/models"
)

// POST /admin/cards
// Multipart form: model_name, price, manufacturer_id, description,
// technology_ids (comma-separated) and an optional "image" file.
func CreateCard(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		modelName := strings.TrimSpace(c.PostForm("model_name"))
		priceStr := c.PostForm("price")
		manufacturerStr := c.PostForm("manufacturer_id")
		if modelName == "" || priceStr == "" || manufacturerStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "model_name, price and manufacturer_id are required"})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"price": "Invalid price"}})
			return
		}
		manufacturerID64, err := strconv.ParseUint(manufacturerStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"manufacturer_id": "Invalid manufacturer_id"}})
			return
		}
		manufacturerID := uint(manufacturerID64)

		if fieldErrors := validateCard(modelName, price); len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
			return
		}

		description := c.PostForm("description")
		if len(description) > 2000 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"description": "Description cannot exceed 2000 characters"}})
			return
		}

		var manufacturer models.Manufacturer
		if err := db.First(&manufacturer, manufacturerID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"manufacturer_id": "Manufacturer does not exist"}})
			return
		}

		// Duplicate check on (model name, manufacturer) before writing.
		var count int64
		if err := db.Model(&models.VideoCard{}).
			Where("LOWER(model_name) = ? AND manufacturer_id = ?", strings.ToLower(modelName), manufacturerID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for duplicates"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"model_name": "This video card already exists for the selected manufacturer"}})
			return
		}

		techIDs, err := parseTechnologyIDs(c.PostForm("technology_ids"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"technology_ids": err.Error()}})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveImage(c, file, uploadDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
		}

		addedBy, _ := middleware.CurrentUserID(c)
		card := models.VideoCard{
			ModelName:      modelName,
			Price:          price,
			ManufacturerID: manufacturerID,
			ImageURL:       imageURL,
			Description:    description,
			AddedByID:      addedBy,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&card).Error; err != nil {
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video card"})
			return
		}

		c.JSON(http.StatusCreated, card)
	}
}
