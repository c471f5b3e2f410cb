package manufacturer

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/controllers/videocard"
	"github.com/UltraNerdDev/GPUStore/models"
)

type Input struct {
	Name string `json:"name" binding:"required"`
}

func validateName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 50 {
		return name, false
	}
	return name, true
}

// nameTaken checks for another row with the same name, excluding the
// one being edited (pass 0 on create).
func nameTaken(db *gorm.DB, name string, excludeID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Manufacturer{}).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(name), excludeID).
		Count(&count).Error
	return count > 0, err
}

// GET /admin/manufacturers
func GetAll(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var manufacturers []models.Manufacturer
		if err := db.Find(&manufacturers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch manufacturers"})
			return
		}
		c.JSON(http.StatusOK, manufacturers)
	}
}

// POST /admin/manufacturers
func Create(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input Input
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		name, ok := validateName(input.Name)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "Name must be between 2 and 50 characters"}})
			return
		}

		taken, err := nameTaken(db, name, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for duplicates"})
			return
		}
		if taken {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "This manufacturer already exists"}})
			return
		}

		manufacturer := models.Manufacturer{Name: name}
		if err := db.Create(&manufacturer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create manufacturer"})
			return
		}
		c.JSON(http.StatusCreated, manufacturer)
	}
}

// PUT /admin/manufacturers/:id
func Update(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer ID"})
			return
		}

		var manufacturer models.Manufacturer
		if err := db.First(&manufacturer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Manufacturer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch manufacturer"})
			return
		}

		var input Input
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		name, ok := validateName(input.Name)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "Name must be between 2 and 50 characters"}})
			return
		}

		taken, err := nameTaken(db, name, manufacturer.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for duplicates"})
			return
		}
		if taken {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "Another manufacturer with this name already exists"}})
			return
		}

		manufacturer.Name = name
		if err := db.Save(&manufacturer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update manufacturer"})
			return
		}
		c.JSON(http.StatusOK, manufacturer)
	}
}

// DELETE /admin/manufacturers/:id
// Removes the manufacturer's cards (with their child rows) first.
func Delete(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer ID"})
			return
		}

		var manufacturer models.Manufacturer
		if err := db.First(&manufacturer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Manufacturer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch manufacturer"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := videocard.DeleteCardsForManufacturer(tx, manufacturer.ID); err != nil {
				return err
			}
			return tx.Delete(&manufacturer).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete manufacturer"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Manufacturer deleted"})
	}
}
