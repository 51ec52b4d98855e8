package appointment

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ===============================
// Date normalization
// ===============================

// NormalizeDate riduce qualsiasi valore data al formato YYYY-MM-DD.
// Le righe storiche possono contenere un suffisso orario
// ("2024-01-01T00:00:00Z" oppure "2024-01-01 00:00:00").
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)

	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}

	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}

	return s
}

// ParseDate interpreta una data normalizzata. Errore = data illeggibile.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, NormalizeDate(raw))
}

// DaysBetween conta i giorni di calendario tra due date (b - a).
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// AddDays somma giorni a una data normalizzata e restituisce la stringa.
func AddDays(date time.Time, days int) string {
	return date.AddDate(0, 0, days).Format(DateLayout)
}
