package models

import "time"

// Category groups sweets by name. Count is derived from the sweets table
// (recomputed, never incrementally maintained).
type Category struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Count       int64     `json:"count"`
	CreatedAt   time.Time `json:"created_at"`
}
