package categorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

// RefreshCounts recomputes every category's count from the sweets table.
// Counts are derived data: recomputed from source on demand, never kept as
// running counters.
func RefreshCounts(db *gorm.DB) error {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return err
	}
	for _, category := range categories {
		var count int64
		if err := db.Model(&models.Sweet{}).
			Where("category = ?", category.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if err := db.Model(&models.Category{}).
			Where("id = ?", category.ID).
			Update("count", count).Error; err != nil {
			return err
		}
	}
	return nil
}

// GET /api/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := RefreshCounts(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh category counts"})
			return
		}

		var categories []models.Category
		if err := db.Order("name asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /api/categories/refresh-counts (admin)
func RefreshCountsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := RefreshCounts(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh category counts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category counts refreshed successfully"})
	}
}
