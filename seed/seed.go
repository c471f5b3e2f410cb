// Package seed loads the demo catalog: manufacturers, technologies,
// a set of sample cards and their technology links. Run is idempotent,
// repeated calls never duplicate rows.
package seed

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/models"
)

var manufacturerNames = []string{
	"NVIDIA", "AMD", "ASUS", "MSI", "Gigabyte",
	"EVGA", "Sapphire", "Zotac", "Palit", "PowerColor",
}

var technologyNames = []string{
	"Ray Tracing", "DLSS 3.0", "FSR 3.1", "G-Sync", "FreeSync",
	"Reflex", "Anti-Lag+", "Resizable BAR", "VRS", "CUDA",
}

type demoCard struct {
	ModelName    string
	Price        string
	Manufacturer string
	Description  string
	ImageURL     string
}

var demoCards = []demoCard{
	{"GeForce RTX 4090", "3800.00", "NVIDIA", "Flagship of the Ada Lovelace architecture.", "4090.jpg"},
	{"Radeon RX 7900 XTX", "2200.00", "AMD", "AMD's strongest RDNA 3 chiplet design.", "7900xtx.jpg"},
	{"ROG Strix RTX 4080 Super", "2600.00", "ASUS", "Premium ASUS build with oversized cooling.", "4080s.jpg"},
	{"GeForce RTX 4070 Ti", "1800.00", "NVIDIA", "The go-to pick for ultra settings at 1440p.", "4070ti.jpg"},
	{"Radeon RX 7800 XT", "1100.00", "AMD", "Current mid-range king with 16GB of VRAM.", "7800xt.jpg"},
	{"GeForce RTX 4060", "650.00", "NVIDIA", "Efficient 1080p card drawing only 115W.", "4060.jpg"},
	{"Radeon RX 7600", "580.00", "AMD", "Affordable and reliable for esports titles.", "7600.jpg"},
	{"MSI Ventus RTX 3060", "600.00", "NVIDIA", "Legacy model still relevant thanks to 12GB VRAM.", "3060.jpg"},
	{"Sapphire Pulse RX 6700 XT", "750.00", "AMD", "Mid-range classic from a proven AMD partner.", "6700xt.jpg"},
	{"GTX 1650 Super", "300.00", "NVIDIA", "Time-tested upgrade for older office builds, no extra power cable needed.", "1650.jpg"},
}

// Run inserts any missing demo rows. Existing rows are left alone.
func Run(db *gorm.DB) error {
	for _, name := range manufacturerNames {
		m := models.Manufacturer{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}

	for _, name := range technologyNames {
		t := models.Technology{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&t).Error; err != nil {
			return err
		}
	}

	for _, dc := range demoCards {
		var manufacturer models.Manufacturer
		if err := db.Where("name = ?", dc.Manufacturer).First(&manufacturer).Error; err != nil {
			return err
		}

		price, err := decimal.NewFromString(dc.Price)
		if err != nil {
			return err
		}

		card := models.VideoCard{
			ModelName:      dc.ModelName,
			Price:          price,
			ManufacturerID: manufacturer.ID,
			Description:    dc.Description,
			ImageURL:       dc.ImageURL,
		}
		if err := db.Where("model_name = ? AND manufacturer_id = ?", dc.ModelName, manufacturer.ID).
			FirstOrCreate(&card).Error; err != nil {
			return err
		}

		if err := linkTechnologies(db, card); err != nil {
			return err
		}
	}

	return nil
}

// linkTechnologies applies the demo rules: RTX cards get Ray Tracing
// and DLSS 3.0, Radeon cards get FSR 3.1, everything gets Resizable BAR.
func linkTechnologies(db *gorm.DB, card models.VideoCard) error {
	var techNames []string
	if strings.Contains(card.ModelName, "RTX") {
		techNames = append(techNames, "Ray Tracing", "DLSS 3.0")
	}
	if strings.Contains(card.ModelName, "Radeon") {
		techNames = append(techNames, "FSR 3.1")
	}
	techNames = append(techNames, "Resizable BAR")

	for _, name := range techNames {
		var tech models.Technology
		if err := db.Where("name = ?", name).First(&tech).Error; err != nil {
			return err
		}
		link := models.CardTechnology{VideoCardID: card.ID, TechnologyID: tech.ID}
		if err := db.Where("video_card_id = ? AND technology_id = ?", card.ID, tech.ID).
			FirstOrCreate(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
