package sweetcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	categorycontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/category"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

type CreateSweetRequest struct {
	Name          string   `json:"name" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Stock         int      `json:"stock" binding:"min=0"`
	Weight        string   `json:"weight"`
	Ingredients   []string `json:"ingredients"`
	Featured      bool     `json:"featured"`
}

// POST /api/sweets (admin)
func CreateSweet(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSweetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
			return
		}

		sweet := models.Sweet{
			ID:            uuid.NewString(),
			Name:          req.Name,
			Category:      req.Category,
			Price:         req.Price,
			OriginalPrice: req.OriginalPrice,
			Description:   req.Description,
			Image:         req.Image,
			Stock:         req.Stock,
			Weight:        req.Weight,
			Ingredients:   req.Ingredients,
			Featured:      req.Featured,
			Rating:        4.5,
		}
		if err := db.Create(&sweet).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sweet"})
			return
		}

		// counts are derived from the catalog, recompute after the write
		_ = categorycontroller.RefreshCounts(db)

		c.JSON(http.StatusCreated, sweet)
	}
}
