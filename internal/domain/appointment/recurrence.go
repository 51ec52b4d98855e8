package appointment

import (
	"sort"

	"github.com/AtelierGestione/atelier-manager/internal/models"
)

// ======================================================
// Rilevamento serie settimanali
// ======================================================

// Soglie storiche del rilevamento: non modificarle, i dati esistenti
// sono stati normalizzati con questi valori.
const (
	minGapDays = 5
	maxGapDays = 9

	tightMinGapDays = 6
	tightMaxGapDays = 8

	// quota minima di intervalli "stretti" per gruppi con 3+ membri
	weeklyGapRatio = 0.8
)

// GroupKey identifica una candidata serie ricorrente. Chiave
// strutturata, non concatenata: i nomi cliente possono contenere
// qualunque carattere.
type GroupKey struct {
	ClientName string
	EmployeeID uint
	StartTime  string
}

func KeyOf(ap models.Appointment) GroupKey {
	return GroupKey{
		ClientName: ap.ClientName,
		EmployeeID: ap.EmployeeID,
		StartTime:  ap.StartTime,
	}
}

// GroupByKey partiziona gli appuntamenti in candidate serie.
func GroupByKey(aps []models.Appointment) map[GroupKey][]models.Appointment {
	groups := make(map[GroupKey][]models.Appointment)
	for _, ap := range aps {
		k := KeyOf(ap)
		groups[k] = append(groups[k], ap)
	}
	return groups
}

// IsWeeklySeries decide se un gruppo di appuntamenti forma una serie
// settimanale:
//
//  1. servono almeno 2 membri;
//  2. ogni intervallo tra date consecutive deve cadere in [5,9] giorni;
//  3. con 3+ membri, almeno l'80% degli intervalli deve cadere in [6,8].
//
// Date illeggibili non sono mai un errore: il gruppo viene
// semplicemente scartato.
func IsWeeklySeries(aps []models.Appointment) bool {
	if len(aps) < 2 {
		return false
	}

	dates, ok := sortedUniqueDates(aps)
	if !ok {
		return false
	}
	if len(dates) < 2 {
		return false
	}

	gaps := make([]int, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		prev, _ := ParseDate(dates[i-1])
		cur, _ := ParseDate(dates[i])
		gap := DaysBetween(prev, cur)

		if gap < minGapDays || gap > maxGapDays {
			return false
		}
		gaps = append(gaps, gap)
	}

	// Con un solo intervallo (gruppi da 2) basta il controllo [5,9].
	if len(dates) < 3 {
		return true
	}

	tight := 0
	for _, gap := range gaps {
		if gap >= tightMinGapDays && gap <= tightMaxGapDays {
			tight++
		}
	}

	return float64(tight) >= weeklyGapRatio*float64(len(gaps))
}

// sortedUniqueDates ordina le date del gruppo e scarta i duplicati
// sullo stesso giorno (tiene il primo): un doppione produrrebbe un
// intervallo di 0 giorni e boccerebbe la serie per sbaglio.
func sortedUniqueDates(aps []models.Appointment) ([]string, bool) {
	seen := make(map[string]bool, len(aps))
	dates := make([]string, 0, len(aps))

	for _, ap := range aps {
		d := NormalizeDate(ap.Date)
		if _, err := ParseDate(d); err != nil {
			return nil, false
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}

	sort.Strings(dates)
	return dates, true
}

// DuplicateIDs restituisce gli id delle righe doppione (stessa data,
// stessa chiave) oltre la prima, nell'ordine di inserimento.
func DuplicateIDs(aps []models.Appointment) []uint {
	sorted := make([]models.Appointment, len(aps))
	copy(sorted, aps)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := NormalizeDate(sorted[i].Date)
		dj := NormalizeDate(sorted[j].Date)
		if di != dj {
			return di < dj
		}
		return sorted[i].ID < sorted[j].ID
	})

	seen := make(map[string]bool, len(sorted))
	var dups []uint
	for _, ap := range sorted {
		d := NormalizeDate(ap.Date)
		if seen[d] {
			dups = append(dups, ap.ID)
			continue
		}
		seen[d] = true
	}
	return dups
}
