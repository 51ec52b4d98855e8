package models

import "time"

// Prodotto da rivendita (fiale, shampoo, ecc.)
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `json:"price"`
	Stock int     `gorm:"default:0" json:"stock"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
