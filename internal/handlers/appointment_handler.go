package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AtelierGestione/atelier-manager/internal/cache"
	"github.com/AtelierGestione/atelier-manager/internal/dto"
	"github.com/AtelierGestione/atelier-manager/internal/httperr"
	"github.com/AtelierGestione/atelier-manager/internal/httpresp"
	"github.com/AtelierGestione/atelier-manager/internal/timezone"
	ucAppointment "github.com/AtelierGestione/atelier-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *ucAppointment.CreateAppointment
	updateUC      *ucAppointment.UpdateAppointment
	deleteUC      *ucAppointment.DeleteAppointment
	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth

	reports *cache.ReportCache
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	reports *cache.ReportCache,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		reports:       reports,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	EmployeeID  uint   `json:"employee_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`

	PaymentMethod string  `json:"payment_method"`
	Price         float64 `json:"price"`
	ProductSold   *string `json:"product_sold"`

	Recurring bool `json:"recurring"`
}

type UpdateAppointmentRequest struct {
	EmployeeID  *uint   `json:"employee_id,omitempty"`
	Date        *string `json:"date,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	ClientName  *string `json:"client_name,omitempty"`
	ServiceType *string `json:"service_type,omitempty"`

	PaymentMethod *string  `json:"payment_method,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	ProductSold   *string  `json:"product_sold,omitempty"`

	Recurring *bool `json:"recurring,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		EmployeeID:    req.EmployeeID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		ClientName:    req.ClientName,
		ServiceType:   req.ServiceType,
		PaymentMethod: req.PaymentMethod,
		Price:         req.Price,
		ProductSold:   req.ProductSold,
		Recurring:     req.Recurring,
	})
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_create_appointment", "Errore nella creazione dell'appuntamento.")
		return
	}

	h.reports.InvalidateAll(c.Request.Context())

	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE (con gestione della serie)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	res, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID: id,
		EmployeeID:    req.EmployeeID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		ClientName:    req.ClientName,
		ServiceType:   req.ServiceType,
		PaymentMethod: req.PaymentMethod,
		Price:         req.Price,
		ProductSold:   req.ProductSold,
		Recurring:     req.Recurring,
		Today:         timezone.Today(),
	})
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_update_appointment", "Errore nella modifica dell'appuntamento.")
		return
	}

	h.reports.InvalidateAll(c.Request.Context())

	httpresp.OK(c, res)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		writeBusinessOrInternal(c, err, "failed_to_delete_appointment", "Errore nella cancellazione.")
		return
	}

	h.reports.InvalidateAll(c.Request.Context())

	httpresp.OK(c, gin.H{"deleted": id})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obbligatoria.")
		return
	}

	aps, err := h.listByDateUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_list_appointments", "Errore nel caricamento.")
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	aps, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		writeBusinessOrInternal(c, err, "failed_to_list_appointments", "Errore nel caricamento.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": dto.FromAppointments(aps),
	})
}
