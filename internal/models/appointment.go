package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID uint     `json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee"`

	// Data sempre normalizzata a YYYY-MM-DD, senza suffisso orario.
	Date string `gorm:"size:10;index" json:"date"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	ClientName  string `gorm:"size:100" json:"client_name"`
	ServiceType string `gorm:"size:50" json:"service_type"`

	PaymentMethod string `gorm:"size:20;default:'contanti'" json:"payment_method"`

	// Prezzo effettivo; se zero si usa il listino del servizio.
	Price float64 `json:"price"`

	ProductSold *string `gorm:"size:100" json:"product_sold"`

	RecurrenceGroupID *string `gorm:"size:64;index" json:"recurrence_group_id"`
	IsRecurring       bool    `gorm:"default:false" json:"is_recurring"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
