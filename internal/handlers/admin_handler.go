package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AtelierGestione/atelier-manager/internal/cache"
	"github.com/AtelierGestione/atelier-manager/internal/httperr"
	"github.com/AtelierGestione/atelier-manager/internal/httpresp"
	"github.com/AtelierGestione/atelier-manager/internal/middleware"
	ucRecurrence "github.com/AtelierGestione/atelier-manager/internal/usecase/recurrence"
)

type AdminHandler struct {
	reconcileUC *ucRecurrence.Reconcile
	reports     *cache.ReportCache
}

func NewAdminHandler(reconcileUC *ucRecurrence.Reconcile, reports *cache.ReportCache) *AdminHandler {
	return &AdminHandler{reconcileUC: reconcileUC, reports: reports}
}

// ReconcileRecurrences ripassa tutta la tabella appuntamenti e
// normalizza flag e gruppi delle serie. Operazione riservata al
// titolare: riscrive dati storici.
func (h *AdminHandler) ReconcileRecurrences(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role != "owner" {
		httperr.Write(c, 403, "forbidden", "Operazione riservata al titolare.")
		return
	}

	summary, err := h.reconcileUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_reconcile", "Errore nella riconciliazione.")
		return
	}

	// la riconciliazione cancella e riscrive righe su mesi arbitrari
	h.reports.InvalidateAll(c.Request.Context())

	httpresp.OK(c, summary)
}
