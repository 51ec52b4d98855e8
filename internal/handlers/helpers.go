package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AtelierGestione/atelier-manager/internal/httperr"
)

// paramID legge :id dal path; risposta 400 già scritta se non numerico.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificativo non valido.")
		return 0, false
	}
	return uint(id), true
}

// writeBusinessOrInternal traduce un errore di dominio nel codice HTTP
// giusto; tutto il resto diventa un errore interno opaco.
func writeBusinessOrInternal(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, fallbackCode, fallbackMsg)
		return
	}

	if strings.HasSuffix(code, "_not_found") {
		httperr.NotFound(c, code, "Elemento non trovato.")
		return
	}

	httperr.BadRequest(c, code, "Richiesta non valida.")
}
