package technology

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

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

func nameTaken(db *gorm.DB, name string, excludeID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Technology{}).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(name), excludeID).
		Count(&count).Error
	return count > 0, err
}

// GET /admin/technologies
func GetAll(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var technologies []models.Technology
		if err := db.Find(&technologies).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch technologies"})
			return
		}
		c.JSON(http.StatusOK, technologies)
	}
}

// POST /admin/technologies
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
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "This technology already exists"}})
			return
		}

		tech := models.Technology{Name: name}
		if err := db.Create(&tech).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create technology"})
			return
		}
		c.JSON(http.StatusCreated, tech)
	}
}

// PUT /admin/technologies/:id
func Update(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid technology ID"})
			return
		}

		var tech models.Technology
		if err := db.First(&tech, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Technology not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch technology"})
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

		taken, err := nameTaken(db, name, tech.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for duplicates"})
			return
		}
		if taken {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "Another technology with this name already exists"}})
			return
		}

		tech.Name = name
		if err := db.Save(&tech).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update technology"})
			return
		}
		c.JSON(http.StatusOK, tech)
	}
}

// DELETE /admin/technologies/:id
// Card links go first to keep the foreign keys happy.
func Delete(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid technology ID"})
			return
		}

		var tech models.Technology
		if err := db.First(&tech, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Technology not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch technology"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("technology_id = ?", tech.ID).Delete(&models.CardTechnology{}).Error; err != nil {
				return err
			}
			return tx.Delete(&tech).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete technology"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Technology deleted"})
	}
}
