package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AtelierGestione/atelier-manager/internal/cache"
	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/domain/report"
	"github.com/AtelierGestione/atelier-manager/internal/dto"
	"github.com/AtelierGestione/atelier-manager/internal/httperr"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

// ======================================================
// REPORT
// ======================================================

type ReportHandler struct {
	db      *gorm.DB
	reports *cache.ReportCache
}

func NewReportHandler(db *gorm.DB, reports *cache.ReportCache) *ReportHandler {
	return &ReportHandler{db: db, reports: reports}
}

// ======================================================
// MENSILE (con cache)
// ======================================================

func (h *ReportHandler) Monthly(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	if cached, hit := h.reports.GetMonthly(c.Request.Context(), year, month); hit {
		out := dto.FromSummary(*cached)
		out.MonthKey = report.MonthKey(year, month)
		c.JSON(200, out)
		return
	}

	from, to := monthRange(year, month)

	summary, err := h.summarize(from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Errore nel calcolo del report.")
		return
	}

	h.reports.SetMonthly(c.Request.Context(), year, month, summary)

	out := dto.FromSummary(*summary)
	out.MonthKey = report.MonthKey(year, month)
	c.JSON(200, out)
}

// ======================================================
// INTERVALLO LIBERO
// ======================================================

func (h *ReportHandler) Range(c *gin.Context) {
	from := domain.NormalizeDate(c.Query("from"))
	to := domain.NormalizeDate(c.Query("to"))

	if _, err := domain.ParseDate(from); err != nil {
		httperr.BadRequest(c, "invalid_from", "Data di inizio non valida.")
		return
	}
	if _, err := domain.ParseDate(to); err != nil {
		httperr.BadRequest(c, "invalid_to", "Data di fine non valida.")
		return
	}

	summary, err := h.summarize(from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Errore nel calcolo del report.")
		return
	}

	out := dto.FromSummary(*summary)
	out.From = from
	out.To = to
	c.JSON(200, out)
}

// ======================================================
// PER DIPENDENTE
// ======================================================

func (h *ReportHandler) ByEmployee(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	from, to := monthRange(year, month)

	var aps []models.Appointment
	if err := h.db.
		Where("date >= ? AND date < ?", from, to).
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_build_report", "Errore nel calcolo del report.")
		return
	}

	c.JSON(200, gin.H{
		"month":     report.MonthKey(year, month),
		"employees": report.ByEmployee(aps),
	})
}

// --------------------------------------------------
// Calcolo comune [from, to)
// --------------------------------------------------

func (h *ReportHandler) summarize(from, to string) (*report.Summary, error) {
	var aps []models.Appointment
	if err := h.db.
		Where("date >= ? AND date < ?", from, to).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	var expenses report.Expenses

	sums := []struct {
		model any
		dest  *float64
	}{
		{&models.UtilityExpense{}, &expenses.Utilities},
		{&models.BarExpense{}, &expenses.Bar},
		{&models.MaintenanceExpense{}, &expenses.Maintenance},
		{&models.ProductExpense{}, &expenses.Products},
	}

	for _, s := range sums {
		if err := h.db.
			Model(s.model).
			Select("COALESCE(SUM(amount), 0)").
			Where("date >= ? AND date < ?", from, to).
			Scan(s.dest).Error; err != nil {
			return nil, err
		}
	}

	summary := report.Summarize(aps, expenses)
	return &summary, nil
}
