package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // order placed, awaiting processing
	OrderStatusProcessed OrderStatus = "processed" // accepted and being prepared
	OrderStatusShipped   OrderStatus = "shipped"   // handed to the courier
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a raw string to a known status.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(strings.TrimSpace(status))) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessed:
		return OrderStatusProcessed, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// orderTransitions defines the allowed status graph.
// Shipped and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusProcessed, OrderStatusCancelled},
	OrderStatusProcessed: {OrderStatusShipped, OrderStatusCancelled},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Order is immutable after checkout except for Status.
// TotalPrice is computed once at confirmation and never recomputed.
type Order struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string          `gorm:"not null;index" json:"user_id"`
	User       User            `gorm:"foreignKey:UserID" json:"user"`
	OrderDate  time.Time       `json:"order_date"`
	Status     OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem copies quantity and unit price out of the cart at checkout.
// PriceAtPurchase stays fixed even if the card's live price changes later.
type OrderItem struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         uint            `gorm:"index" json:"order_id"`
	VideoCardID     uint            `gorm:"not null" json:"video_card_id"`
	VideoCard       VideoCard       `gorm:"foreignKey:VideoCardID" json:"video_card"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_purchase"`
}
