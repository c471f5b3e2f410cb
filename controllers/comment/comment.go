package comment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/middleware"
	"github.com/UltraNerdDev/GPUStore/models"
)

type Input struct {
	Content string `json:"content"`
}

// POST /cards/:id/comments
// Customers only; admins get 403. Blank content is silently ignored
// and the caller is sent back to the card page.
func AddComment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if middleware.CurrentRole(c).IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Administrators cannot comment on products"})
			return
		}

		cardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video card ID"})
			return
		}

		var input Input
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if strings.TrimSpace(input.Content) == "" {
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/cards/%d", cardID))
			return
		}

		var card models.VideoCard
		if err := db.First(&card, cardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Video card not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch video card"})
			return
		}

		userID, _ := middleware.CurrentUserID(c)
		newComment := models.Comment{
			Content:     input.Content,
			CreatedAt:   time.Now(),
			VideoCardID: card.ID,
			UserID:      userID,
		}
		if err := db.Create(&newComment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
			return
		}

		c.JSON(http.StatusCreated, newComment)
	}
}
