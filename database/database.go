package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/config"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

// Connect opens the Postgres connection from config.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
}

// Migrate creates/updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Sweet{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
