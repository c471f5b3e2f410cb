package models

import "time"

type Comment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Content     string    `gorm:"not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	VideoCardID uint      `gorm:"not null;index" json:"video_card_id"`
	UserID      string    `gorm:"not null" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
}
