package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/auth"
	cartcontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/cart"
	ordercontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/order"
	wishlistcontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/wishlist"
	"github.com/VasifPeerji/sweet-shop-management-system/logger"
	"github.com/VasifPeerji/sweet-shop-management-system/middleware"
)

// SetupUserRoutes registers the JWT-protected per-user endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, issuer *auth.TokenIssuer, log *logger.Logger) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.Auth(db, issuer))
	{
		cartGroup.GET("", cartcontroller.GetCart(db))
		cartGroup.POST("/add", cartcontroller.AddToCart(db))
		cartGroup.PUT("/item/:sweetId", cartcontroller.UpdateCartItem(db))
		cartGroup.DELETE("/item/:sweetId", cartcontroller.RemoveFromCart(db))
		cartGroup.DELETE("/clear", cartcontroller.ClearCart(db))
	}

	wishlistGroup := api.Group("/wishlist")
	wishlistGroup.Use(middleware.Auth(db, issuer))
	{
		wishlistGroup.GET("", wishlistcontroller.GetWishlist(db))
		wishlistGroup.POST("/add/:sweetId", wishlistcontroller.AddToWishlist(db))
		wishlistGroup.DELETE("/remove/:sweetId", wishlistcontroller.RemoveFromWishlist(db))
		wishlistGroup.DELETE("/clear", wishlistcontroller.ClearWishlist(db))
	}

	orderGroup := api.Group("/orders")
	orderGroup.Use(middleware.Auth(db, issuer))
	{
		orderGroup.GET("", ordercontroller.GetUserOrdersHandler(db))
		orderGroup.POST("", ordercontroller.PlaceOrderHandler(db))
		orderGroup.GET("/:id", ordercontroller.GetOrderHandler(db))
		orderGroup.PATCH("/:id/cancel", ordercontroller.CancelOrderHandler(db, log))
	}
}
