package handlers

import (
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/httperr"
)

var monthKeyRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// parseYearMonth legge e valida ?year=&month= dalla query string.
// Scrive da sé la risposta d'errore; ok=false ferma l'handler.
func parseYearMonth(c *gin.Context) (year int, month int, ok bool) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Anno e mese sono obbligatori.")
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Anno non valido.")
		return 0, 0, false
	}

	month, err = strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mese non valido.")
		return 0, 0, false
	}

	return year, month, true
}

// monthRange trasforma anno+mese nell'intervallo [primo giorno, primo
// giorno del mese dopo), come stringhe YYYY-MM-DD.
func monthRange(year int, month int) (from string, to string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return start.Format(domain.DateLayout), end.Format(domain.DateLayout)
}

// isMonthKey valida il filtro ?month=YYYY-MM delle spese.
func isMonthKey(s string) bool {
	return monthKeyRe.MatchString(s)
}
