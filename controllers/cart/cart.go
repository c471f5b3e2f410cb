package cart

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/middleware"
	"github.com/UltraNerdDev/GPUStore/models"
)

type AddItemInput struct {
	VideoCardID uint `json:"video_card_id" binding:"required"`
	Quantity    int  `json:"quantity" binding:"omitempty,min=1"`
}

type AdjustItemInput struct {
	VideoCardID uint `json:"video_card_id" binding:"required"`
	Change      int  `json:"change" binding:"required"`
}

// Total sums quantity x current card price over the user's cart.
func Total(db *gorm.DB, userID string) (decimal.Decimal, error) {
	var items []models.CartItem
	if err := db.Preload("VideoCard").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.VideoCard.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var items []models.CartItem
		if err := db.Preload("VideoCard").Preload("VideoCard.Manufacturer").
			Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.VideoCard.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"cart_total": total.StringFixed(2),
		})
	}
}

// POST /user/cart
// Adds a card to the cart, or bumps the quantity if it is already there.
// Additive, not replacing: adding the same card twice merges into one row.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		var card models.VideoCard
		if err := db.First(&card, input.VideoCardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Video card does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate video card"})
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND video_card_id = ?", userID, input.VideoCardID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				UserID:      userID,
				VideoCardID: card.ID,
				Quantity:    input.Quantity,
				AddedAt:     time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			c.JSON(http.StatusCreated, item)
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
		default:
			item.Quantity += input.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
			c.JSON(http.StatusOK, item)
		}
	}
}

// POST /user/cart/adjust
// The +/- buttons call this without a page reload. Returns the new line
// and cart totals, or a removed flag when the quantity drops to zero.
func AdjustQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var input AdjustItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		err := db.Preload("VideoCard").
			Where("user_id = ? AND video_card_id = ?", userID, input.VideoCardID).
			First(&item).Error
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false})
			return
		}

		item.Quantity += input.Change

		if item.Quantity <= 0 {
			if err := db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "removed": true})
			return
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		cartTotal, err := Total(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cart total"})
			return
		}
		itemTotal := item.VideoCard.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"new_quantity": item.Quantity,
			"item_total":   itemTotal.StringFixed(2),
			"cart_total":   cartTotal.StringFixed(2),
		})
	}
}

// DELETE /user/cart/:id
// The id is the CartItem id, not the card id. Scoped to the requesting
// user so nobody can delete rows out of another cart.
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}
