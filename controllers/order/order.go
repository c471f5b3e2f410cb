package order

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

var ErrEmptyCart = errors.New("cart is empty")

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// Confirm converts the user's cart into an order in one transaction:
// the order row, its items with prices frozen at this moment, and the
// cart deletion all commit together or not at all.
func Confirm(db *gorm.DB, userID string) (*models.Order, error) {
	var cartItems []models.CartItem
	if err := db.Preload("VideoCard").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		qty := decimal.NewFromInt(int64(item.Quantity))
		total = total.Add(item.VideoCard.Price.Mul(qty))

		orderItems = append(orderItems, models.OrderItem{
			VideoCardID:     item.VideoCardID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.VideoCard.Price, // frozen here, never updated
		})
	}

	newOrder := models.Order{
		UserID:     userID,
		OrderDate:  time.Now(),
		Status:     models.OrderStatusPending,
		TotalPrice: total,
		Items:      orderItems,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newOrder).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &newOrder, nil
}

// GET /user/checkout
// Cart review before confirming. An empty cart redirects back to the cart.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var items []models.CartItem
		if err := db.Preload("VideoCard").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(items) == 0 {
			c.Redirect(http.StatusSeeOther, "/user/cart")
			return
		}

		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.VideoCard.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       items,
			"total_price": total.StringFixed(2),
		})
	}
}

// POST /user/orders
func ConfirmOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		newOrder, err := Confirm(db, userID)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.Redirect(http.StatusSeeOther, "/user/cart")
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"order_id":    newOrder.ID,
			"status":      newOrder.Status,
			"total_price": newOrder.TotalPrice.StringFixed(2),
		})
	}
}

// GET /user/orders
func MyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("order_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").Preload("Items").
			Order("order_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var ord models.Order
		if err := db.Preload("User").
			Preload("Items").
			Preload("Items.VideoCard").
			First(&ord, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, ord)
	}
}

// PUT /admin/orders/:id/status
// Only moves allowed by the transition table are written:
// pending -> processed/cancelled, processed -> shipped/cancelled.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		next, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
			return
		}

		var ord models.Order
		if err := db.First(&ord, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if !ord.Status.CanTransitionTo(next) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot change status from " + string(ord.Status) + " to " + string(next),
			})
			return
		}

		if err := db.Model(&ord).Update("status", next).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": ord.ID, "status": next})
	}
}
