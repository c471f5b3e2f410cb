package models

import "time"

// CartItem is one line of a user's cart. The unique index on
// (user_id, video_card_id) keeps a single row per user/card pair;
// adding the same card again bumps Quantity instead.
type CartItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"not null;uniqueIndex:idx_cart_user_card" json:"user_id"`
	VideoCardID uint      `gorm:"not null;uniqueIndex:idx_cart_user_card" json:"video_card_id"`
	VideoCard   VideoCard `gorm:"foreignKey:VideoCardID" json:"video_card"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}
