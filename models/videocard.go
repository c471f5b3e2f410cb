package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type VideoCard struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ModelName      string          `gorm:"not null;size:100" json:"model_name"` // e.g. "GeForce RTX 4090", unique per manufacturer
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ManufacturerID uint            `gorm:"not null;index" json:"manufacturer_id"`
	Manufacturer   Manufacturer    `gorm:"foreignKey:ManufacturerID" json:"manufacturer"`
	ImageURL       string          `json:"image_url"` // file name only, served under /uploads
	Description    string          `gorm:"size:2000" json:"description"`
	AddedByID      string          `json:"added_by_id,omitempty"` // admin who created the card
	Technologies   []Technology    `gorm:"many2many:card_technologies" json:"technologies"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CardTechnology is the join row between a card and a technology.
// The composite primary key enforces at most one link per pair.
type CardTechnology struct {
	VideoCardID  uint `gorm:"primaryKey" json:"video_card_id"`
	TechnologyID uint `gorm:"primaryKey" json:"technology_id"`
}
