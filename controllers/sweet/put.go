package sweetcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categorycontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/category"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

// UpdateSweetRequest carries patch semantics: nil means "leave unchanged".
type UpdateSweetRequest struct {
	Name          *string   `json:"name"`
	Category      *string   `json:"category"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	Description   *string   `json:"description"`
	Image         *string   `json:"image"`
	Stock         *int      `json:"stock"`
	Weight        *string   `json:"weight"`
	Ingredients   *[]string `json:"ingredients"`
	Featured      *bool     `json:"featured"`
}

// PUT /api/sweets/:id (admin)
func UpdateSweet(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var sweet models.Sweet
		if err := db.First(&sweet, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "sweet not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sweet"})
			return
		}

		var req UpdateSweetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
			return
		}
		if req.Price != nil && *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
			return
		}
		if req.Stock != nil && *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must not be negative"})
			return
		}

		if req.Name != nil {
			sweet.Name = *req.Name
		}
		if req.Category != nil {
			sweet.Category = *req.Category
		}
		if req.Price != nil {
			sweet.Price = *req.Price
		}
		if req.OriginalPrice != nil {
			sweet.OriginalPrice = req.OriginalPrice
		}
		if req.Description != nil {
			sweet.Description = *req.Description
		}
		if req.Image != nil {
			sweet.Image = *req.Image
		}
		if req.Stock != nil {
			sweet.Stock = *req.Stock
		}
		if req.Weight != nil {
			sweet.Weight = *req.Weight
		}
		if req.Ingredients != nil {
			sweet.Ingredients = *req.Ingredients
		}
		if req.Featured != nil {
			sweet.Featured = *req.Featured
		}

		if err := db.Save(&sweet).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sweet"})
			return
		}

		_ = categorycontroller.RefreshCounts(db)

		c.JSON(http.StatusOK, sweet)
	}
}
