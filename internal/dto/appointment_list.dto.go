package dto

import "github.com/AtelierGestione/atelier-manager/internal/models"

type AppointmentListDTO struct {
	ID            uint    `json:"id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	ClientName    string  `json:"client_name"`
	ServiceType   string  `json:"service_type"`
	PaymentMethod string  `json:"payment_method"`
	Price         float64 `json:"price"`
	EmployeeID    uint    `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	ProductSold   *string `json:"product_sold"`
	IsRecurring   bool    `json:"is_recurring"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:            ap.ID,
		Date:          ap.Date,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		ClientName:    ap.ClientName,
		ServiceType:   ap.ServiceType,
		PaymentMethod: ap.PaymentMethod,
		Price:         ap.Price,
		EmployeeID:    ap.EmployeeID,
		EmployeeName:  ap.Employee.Name,
		ProductSold:   ap.ProductSold,
		IsRecurring:   ap.IsRecurring,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
