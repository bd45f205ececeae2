package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/auth"
	categorycontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/category"
	sweetcontroller "github.com/VasifPeerji/sweet-shop-management-system/controllers/sweet"
	"github.com/VasifPeerji/sweet-shop-management-system/middleware"
)

// SetupAuthRoutes registers the /api/auth endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, issuer *auth.TokenIssuer) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db, issuer))
		authGroup.POST("/login", auth.LoginHandler(db, issuer))
		authGroup.POST("/social-login", auth.SocialLoginHandler(db, issuer))
		authGroup.POST("/logout", auth.LogoutHandler())
		authGroup.GET("/me", middleware.Auth(db, issuer), auth.MeHandler())
	}
}

// SetupPublicRoutes registers the unauthenticated catalog endpoints.
func SetupPublicRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/sweets", sweetcontroller.GetSweets(db))
	api.GET("/sweets/:id", sweetcontroller.GetSweetByID(db))
	api.GET("/categories", categorycontroller.GetCategories(db))
}
