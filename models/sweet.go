package models

import "time"

// Sweet is the shop's single product type. Stock is never negative;
// every mutation goes through a conditional update (see controllers/sweet).
type Sweet struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Category      string    `gorm:"index" json:"category"`
	Price         float64   `gorm:"not null" json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Stock         int       `json:"stock"`
	Weight        string    `json:"weight"` // display weight, e.g. "250g"
	Ingredients   []string  `gorm:"serializer:json" json:"ingredients"`
	Featured      bool      `json:"featured"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
