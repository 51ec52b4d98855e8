package appointment

import (
	"github.com/google/uuid"

	"github.com/AtelierGestione/atelier-manager/internal/models"
)

// Una prenotazione fissa copre un anno di occorrenze settimanali.
const DefaultRecurrenceWeeks = 52

// ======================================================
// Materializzazione serie
// ======================================================

// MaterializeWeekly genera le occorrenze di una nuova serie
// settimanale: una copia del seme per ogni settimana, date a +7 giorni,
// stesso group id appena generato su tutte. Il flag ricorrente viene
// impostato su ogni membro, non solo sul seme, così il rilevamento
// ritrova sempre la serie intera.
//
// Funzione pura: la persistenza (in un'unica transazione) è compito
// del repository.
func MaterializeWeekly(seed models.Appointment, weeks int) ([]models.Appointment, error) {
	if weeks <= 0 {
		weeks = DefaultRecurrenceWeeks
	}

	start, err := ParseDate(seed.Date)
	if err != nil {
		return nil, err
	}

	groupID := uuid.NewString()

	out := make([]models.Appointment, 0, weeks)
	for i := 0; i < weeks; i++ {
		ap := seed
		ap.ID = 0
		ap.Date = AddDays(start, 7*i)
		ap.RecurrenceGroupID = &groupID
		ap.IsRecurring = true
		out = append(out, ap)
	}

	return out, nil
}
