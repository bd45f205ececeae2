package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/logger"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

func floatPtr(f float64) *float64 { return &f }

// Seed loads the starter catalog and the admin account. It is idempotent:
// if any sweets exist the seed is skipped entirely.
func Seed(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&models.Sweet{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("database already seeded", "sweets", count)
		return nil
	}

	now := time.Now().UTC()

	admin := models.User{
		ID:       uuid.NewString(),
		Name:     "Admin User",
		Email:    "admin@sweetshop.com",
		Password: "$2b$12$EixZaYVK1fsbw1ZfbX3OXePaWxn96p36WQoeG6Lruj3vjPGga31lW", // admin123
		Role:     models.RoleAdmin,
		Provider: "email",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{ID: uuid.NewString(), Name: "Indian Sweets", Icon: "🍮", Description: "Traditional Indian sweets and desserts", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Chocolates", Icon: "🍫", Description: "Premium chocolates and cocoa treats", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Cupcakes", Icon: "🧁", Description: "Freshly baked cupcakes and muffins", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Gummies", Icon: "🍬", Description: "Soft and chewy gummy candies", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Candies", Icon: "🍭", Description: "Hard candies and lollipops", CreatedAt: now},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	sweets := []models.Sweet{
		{
			ID: uuid.NewString(), Name: "Gulab Jamun", Category: "Indian Sweets",
			Price: 25, OriginalPrice: floatPtr(30),
			Description: "Soft, spongy balls soaked in rose-flavored sugar syrup",
			Stock:       50, Weight: "250g",
			Ingredients: []string{"Milk solids", "Sugar", "Rose water", "Cardamom"},
			Featured:    true, Rating: 4.8, Reviews: 125,
		},
		{
			ID: uuid.NewString(), Name: "Kaju Katli", Category: "Indian Sweets",
			Price: 45, OriginalPrice: floatPtr(50),
			Description: "Diamond-shaped cashew fudge with silver leaf",
			Stock:       30, Weight: "500g",
			Ingredients: []string{"Cashews", "Sugar", "Ghee", "Silver leaf"},
			Featured:    true, Rating: 4.9, Reviews: 89,
		},
		{
			ID: uuid.NewString(), Name: "Boondi Laddu", Category: "Indian Sweets",
			Price: 20, OriginalPrice: floatPtr(25),
			Description: "Traditional gram flour pearls shaped into perfect spheres",
			Stock:       40, Weight: "400g",
			Ingredients: []string{"Gram flour", "Sugar", "Ghee", "Cardamom", "Almonds"},
			Featured:    true, Rating: 4.7, Reviews: 156,
		},
		{
			ID: uuid.NewString(), Name: "Dark Chocolate Truffles", Category: "Chocolates",
			Price: 55, OriginalPrice: floatPtr(65),
			Description: "Rich dark chocolate truffles dusted with cocoa",
			Stock:       25, Weight: "200g",
			Ingredients: []string{"Dark chocolate", "Cream", "Cocoa powder"},
			Featured:    false, Rating: 4.6, Reviews: 64,
		},
		{
			ID: uuid.NewString(), Name: "Vanilla Cupcake", Category: "Cupcakes",
			Price: 12,
			Description: "Classic vanilla cupcake with buttercream frosting",
			Stock:       60, Weight: "120g",
			Ingredients: []string{"Flour", "Sugar", "Butter", "Vanilla", "Eggs"},
			Featured:    false, Rating: 4.4, Reviews: 41,
		},
		{
			ID: uuid.NewString(), Name: "Fruit Gummy Bears", Category: "Gummies",
			Price: 8,
			Description: "Assorted fruit-flavored gummy bears",
			Stock:       100, Weight: "150g",
			Ingredients: []string{"Glucose syrup", "Gelatin", "Fruit juice"},
			Featured:    false, Rating: 4.3, Reviews: 73,
		},
	}
	if err := db.Create(&sweets).Error; err != nil {
		return err
	}

	log.Info("database seeded",
		"users", 1, "categories", len(categories), "sweets", len(sweets))
	return nil
}
