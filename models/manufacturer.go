package models

// Manufacturer is a GPU brand, e.g. "NVIDIA", "AMD", "ASUS".
// Name must be unique across the table (2-50 characters).
type Manufacturer struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string      `gorm:"uniqueIndex;not null;size:50" json:"name"`
	VideoCards []VideoCard `gorm:"foreignKey:ManufacturerID" json:"video_cards,omitempty"`
}
