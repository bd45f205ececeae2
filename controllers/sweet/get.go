package sweetcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

// GET /api/sweets/:id
func GetSweetByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sweet models.Sweet
		if err := db.First(&sweet, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "sweet not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sweet"})
			return
		}
		c.JSON(http.StatusOK, sweet)
	}
}
