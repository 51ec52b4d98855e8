package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AtelierGestione/atelier-manager/internal/httperr"
	"github.com/AtelierGestione/atelier-manager/internal/httpresp"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

type EmployeeHandler struct {
	db *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

// --------- Requests ---------

type CreateEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type UpdateEmployeeRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *EmployeeHandler) List(c *gin.Context) {
	var employees []models.Employee

	q := h.db.Order("name ASC")
	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	if err := q.Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Errore nel caricamento.")
		return
	}

	httpresp.List(c, employees)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	emp := models.Employee{
		Name:   req.Name,
		Phone:  req.Phone,
		Active: true,
	}

	if err := h.db.Create(&emp).Error; err != nil {
		httperr.Internal(c, "failed_to_create_employee", "Errore nella creazione.")
		return
	}

	httpresp.Created(c, emp)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var emp models.Employee
	if err := h.db.First(&emp, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Dipendente non trovato.")
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	if err := h.db.Save(&emp).Error; err != nil {
		httperr.Internal(c, "failed_to_update_employee", "Errore nel salvataggio.")
		return
	}

	httpresp.OK(c, emp)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var emp models.Employee
	if err := h.db.First(&emp, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Dipendente non trovato.")
		return
	}

	// gli appuntamenti del dipendente restano: la FK va a NULL
	if err := h.db.Delete(&emp).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_employee", "Errore nella cancellazione.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}
