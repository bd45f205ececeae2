package models

import "time"

type Cart struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Total     float64    `json:"total"` // always recomputed from items, never set directly
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a snapshot of the sweet at the moment it was added;
// price is the add-time price, not live-joined with the catalog.
type CartItem struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	CartID   string    `gorm:"index;uniqueIndex:idx_cart_sweet" json:"-"`
	SweetID  string    `gorm:"uniqueIndex:idx_cart_sweet" json:"sweet_id"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Weight   string    `json:"weight"`
	AddedAt  time.Time `json:"added_at"`
}
