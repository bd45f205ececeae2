package sweetcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/apperr"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

// AdjustStock applies delta to a sweet's stock as a single conditional
// update. The WHERE guard keeps stock from ever going negative: under
// concurrent debits the database serializes the updates and the loser's
// guard fails. Zero rows affected is disambiguated by a re-read.
func AdjustStock(db *gorm.DB, id string, delta int) error {
	result := db.Model(&models.Sweet{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var sweet models.Sweet
		err := db.Select("id").First(&sweet, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("sweet not found")
		}
		if err != nil {
			return err
		}
		return apperr.InsufficientStock("not enough stock available")
	}
	return nil
}

type setStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// PATCH /api/sweets/:id/stock (admin)
func SetStock(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
			return
		}
		if *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must not be negative"})
			return
		}

		result := db.Model(&models.Sweet{}).
			Where("id = ?", c.Param("id")).
			Update("stock", *req.Stock)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update stock"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "sweet not found"})
			return
		}

		var sweet models.Sweet
		if err := db.First(&sweet, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sweet"})
			return
		}
		c.JSON(http.StatusOK, sweet)
	}
}

type setFeaturedRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

// PATCH /api/sweets/:id/featured (admin)
func SetFeatured(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setFeaturedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
			return
		}

		result := db.Model(&models.Sweet{}).
			Where("id = ?", c.Param("id")).
			Update("featured", *req.Featured)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update featured"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "sweet not found"})
			return
		}

		var sweet models.Sweet
		if err := db.First(&sweet, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sweet"})
			return
		}
		c.JSON(http.StatusOK, sweet)
	}
}
