package models

import "time"

type Wishlist struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"uniqueIndex" json:"user_id"` // enforces ONE wishlist per user
	Items     []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// WishlistItem has set semantics by sweet id: re-adding is rejected.
type WishlistItem struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	WishlistID string    `gorm:"index;uniqueIndex:idx_wishlist_sweet" json:"-"`
	SweetID    string    `gorm:"uniqueIndex:idx_wishlist_sweet" json:"sweet_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Price      float64   `json:"price"`
	AddedAt    time.Time `json:"added_at"`
}
