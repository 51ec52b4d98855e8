package models

import "time"

// Le quattro categorie di spese mensili vivono in tabelle separate,
// tutte con la stessa forma. Date in formato YYYY-MM-DD come gli
// appuntamenti.

type UtilityExpense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        string    `gorm:"size:10;index" json:"date"`
	Description string    `gorm:"size:255" json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type BarExpense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        string    `gorm:"size:10;index" json:"date"`
	Description string    `gorm:"size:255" json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type MaintenanceExpense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        string    `gorm:"size:10;index" json:"date"`
	Description string    `gorm:"size:255" json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// Ordini di prodotti per il salone (spesa, non rivendita).
type ProductExpense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        string    `gorm:"size:10;index" json:"date"`
	Description string    `gorm:"size:255" json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}
