package videocard

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/models"
)

// GET /admin/cards/export
func ExportCardsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cards []models.VideoCard
		if err := db.Preload("Manufacturer").Preload("Technologies").Find(&cards).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch video cards"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("VideoCards")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Model", "Manufacturer", "Price", "Technologies", "Description", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, card := range cards {
			row := sheet.AddRow()
			row.AddCell().SetValue(card.ID)
			row.AddCell().SetValue(card.ModelName)
			row.AddCell().SetValue(card.Manufacturer.Name)
			row.AddCell().SetValue(card.Price.StringFixed(2))

			var techNames []string
			for _, tech := range card.Technologies {
				techNames = append(techNames, tech.Name)
			}
			row.AddCell().SetValue(strings.Join(techNames, ", "))

			row.AddCell().SetValue(card.Description)
			row.AddCell().SetValue(card.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=video_cards.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
