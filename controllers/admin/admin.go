package admincontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/apperr"
	ordercontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/order"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

type StatsResponse struct {
	TotalSweets     int64          `json:"total_sweets"`
	LowStockCount   int64          `json:"low_stock_count"`
	OutOfStockCount int64          `json:"out_of_stock_count"`
	FeaturedCount   int64          `json:"featured_count"`
	TotalOrders     int64          `json:"total_orders"`
	TotalRevenue    float64        `json:"total_revenue"`
	RecentOrders    []models.Order `json:"recent_orders"`
}

// GET /api/admin/stats
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats StatsResponse

		counts := []struct {
			dest  *int64
			model interface{}
			query string
			args  []interface{}
		}{
			{&stats.TotalSweets, &models.Sweet{}, "", nil},
			{&stats.LowStockCount, &models.Sweet{}, "stock <= ? AND stock > 0", []interface{}{5}},
			{&stats.OutOfStockCount, &models.Sweet{}, "stock = 0", nil},
			{&stats.FeaturedCount, &models.Sweet{}, "featured = ?", []interface{}{true}},
			{&stats.TotalOrders, &models.Order{}, "", nil},
		}
		for _, cnt := range counts {
			q := db.Model(cnt.model)
			if cnt.query != "" {
				q = q.Where(cnt.query, cnt.args...)
			}
			if err := q.Count(cnt.dest).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
				return
			}
		}

		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(total), 0)").
			Scan(&stats.TotalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute revenue"})
			return
		}

		if err := db.Preload("Items").
			Order("created_at DESC").
			Limit(5).
			Find(&stats.RecentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recent orders"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

// GET /api/admin/users
// The password hash never leaves the model (json:"-"), so the full record
// is safe to return.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Limit(100).Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").
			Order("created_at DESC").
			Limit(100).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/admin/orders/:id/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
			return
		}
		if err := ordercontroller.UpdateOrderStatus(db, c.Param("id"), req.Status); err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order status updated successfully"})
	}
}
