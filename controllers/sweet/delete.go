package sweetcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categorycontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/category"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

// DELETE /api/sweets/:id (admin)
func DeleteSweet(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Sweet{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sweet"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "sweet not found"})
			return
		}

		_ = categorycontroller.RefreshCounts(db)

		c.JSON(http.StatusOK, gin.H{"message": "sweet deleted successfully"})
	}
}
