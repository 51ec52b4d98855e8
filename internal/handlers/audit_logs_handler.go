package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AtelierGestione/atelier-manager/internal/httperr"
	"github.com/AtelierGestione/atelier-manager/internal/httpresp"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	q := h.db.Order("created_at DESC").Limit(limit)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Errore nel caricamento.")
		return
	}

	httpresp.List(c, logs)
}
