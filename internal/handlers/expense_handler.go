package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/httperr"
	"github.com/AtelierGestione/atelier-manager/internal/httpresp"
)

// ======================================================
// SPESE
// ======================================================

// Le quattro categorie (utenze, bar, manutenzioni, ordini prodotti)
// hanno la stessa forma e gli stessi endpoint: un solo handler
// generico, istanziato quattro volte in fase di routing.

type ExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

type ExpenseHandler[T any] struct {
	db    *gorm.DB
	build func(date, description string, amount float64) T
}

func NewExpenseHandler[T any](
	db *gorm.DB,
	build func(date, description string, amount float64) T,
) *ExpenseHandler[T] {
	return &ExpenseHandler[T]{db: db, build: build}
}

func (h *ExpenseHandler[T]) List(c *gin.Context) {
	q := h.db.Order("date DESC")

	if month := c.Query("month"); month != "" {
		if !isMonthKey(month) {
			httperr.BadRequest(c, "invalid_month", "Mese non valido, formato YYYY-MM.")
			return
		}
		q = q.Where("date LIKE ?", month+"%")
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_expenses", "Errore nel caricamento.")
		return
	}

	httpresp.List(c, rows)
}

func (h *ExpenseHandler[T]) Create(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	date := domain.NormalizeDate(req.Date)
	if _, err := domain.ParseDate(date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data non valida.")
		return
	}

	row := h.build(date, req.Description, req.Amount)
	if err := h.db.Create(&row).Error; err != nil {
		httperr.Internal(c, "failed_to_create_expense", "Errore nella creazione.")
		return
	}

	httpresp.Created(c, row)
}

func (h *ExpenseHandler[T]) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var row T
	if err := h.db.Delete(&row, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_expense", "Errore nella cancellazione.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}
