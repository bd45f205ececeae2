package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/auth"
	admincontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/admin"
	categorycontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/category"
	sweetcontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/sweet"
	"github.com/VasifPeerji/sweet-shop-management-system/middleware"
)

// SetupAdminRoutes registers catalog management and reporting endpoints.
// Everything here requires an authenticated admin.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, issuer *auth.TokenIssuer) {
	gate := []gin.HandlerFunc{middleware.Auth(db, issuer), middleware.AdminOnly()}

	sweetsAdmin := api.Group("/sweets", gate...)
	{
		sweetsAdmin.POST("", sweetcontroller.CreateSweet(db))
		sweetsAdmin.PUT("/:id", sweetcontroller.UpdateSweet(db))
		sweetsAdmin.DELETE("/:id", sweetcontroller.DeleteSweet(db))
		sweetsAdmin.PATCH("/:id/stock", sweetcontroller.SetStock(db))
		sweetsAdmin.PATCH("/:id/featured", sweetcontroller.SetFeatured(db))
	}

	api.POST("/categories/refresh-counts", append(gate, categorycontroller.RefreshCountsHandler(db))...)

	adminGroup := api.Group("/admin", gate...)
	{
		adminGroup.GET("/stats", admincontroller.GetStats(db))
		adminGroup.GET("/users", admincontroller.GetAllUsers(db))
		adminGroup.GET("/orders", admincontroller.GetAllOrders(db))
		adminGroup.PATCH("/orders/:id/status", admincontroller.UpdateOrderStatusHandler(db))
		adminGroup.GET("/sweets/export-excel", admincontroller.ExportSweetsToExcel(db))
	}
}
