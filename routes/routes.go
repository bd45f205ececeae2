package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/auth"
	"github.com/VasifPeerji/sweet-shop-management-system/logger"
)

// SetupRoutes is the single entry point that wires up all route groups
// under the /api prefix.
func SetupRoutes(r *gin.Engine, db *gorm.DB, issuer *auth.TokenIssuer, log *logger.Logger) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
	})

	// Public routes: auth + catalog browsing
	SetupAuthRoutes(api, db, issuer)
	SetupPublicRoutes(api, db)

	// JWT-protected user routes: cart, wishlist, orders
	SetupUserRoutes(api, db, issuer, log)

	// Admin routes: catalog management + reporting
	SetupAdminRoutes(api, db, issuer)
}
