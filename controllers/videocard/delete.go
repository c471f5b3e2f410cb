package videocard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/models"
)

// DELETE /admin/cards/:id
// Child rows go first: technology links, cart lines, comments and
// order items reference the card and would break the delete otherwise.
func DeleteCard(db *gorm.DB) gin.HandlerFunc {
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

		err = db.Transaction(func(tx *gorm.DB) error {
			return deleteCardTx(tx, card.ID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video card"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Video card deleted"})
	}
}

// deleteCardTx removes one card and its child rows inside an existing
// transaction. Used by the manufacturer delete cascade.
func deleteCardTx(tx *gorm.DB, cardID uint) error {
	if err := tx.Where("video_card_id = ?", cardID).Delete(&models.CardTechnology{}).Error; err != nil {
		return err
	}
	if err := tx.Where("video_card_id = ?", cardID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("video_card_id = ?", cardID).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("video_card_id = ?", cardID).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.VideoCard{}, cardID).Error
}

// DeleteCardsForManufacturer removes every card of a manufacturer with
// their child rows, inside the caller's transaction.
func DeleteCardsForManufacturer(tx *gorm.DB, manufacturerID uint) error {
	var cards []models.VideoCard
	if err := tx.Where("manufacturer_id = ?", manufacturerID).Find(&cards).Error; err != nil {
		return err
	}
	for _, card := range cards {
		if err := deleteCardTx(tx, card.ID); err != nil {
			return err
		}
	}
	return nil
}
