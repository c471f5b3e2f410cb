package models

// Technology is a GPU feature such as "Ray Tracing" or "DLSS 3.0".
// Linked to cards through the card_technologies join table.
type Technology struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;not null;size:50" json:"name"`
}
