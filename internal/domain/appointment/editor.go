package appointment

import "github.com/AtelierGestione/atelier-manager/internal/models"

// ===============================
// Stato rispetto alla serie
// ===============================

type State string

const (
	// mai appartenuto a una serie
	StateStandalone State = "standalone"
	// membro attivo di una serie
	StateActiveMember State = "active_member"
	// staccato da una serie, il gruppo resta sulle righe passate
	StateDetached State = "detached"
)

// StateOf classifica una riga. Le incoerenze storiche
// (flag attivo senza gruppo) vengono tollerate come standalone.
func StateOf(ap models.Appointment) State {
	if ap.RecurrenceGroupID == nil || *ap.RecurrenceGroupID == "" {
		return StateStandalone
	}
	if ap.IsRecurring {
		return StateActiveMember
	}
	return StateDetached
}

// ===============================
// Transizione in modifica
// ===============================

// EditPlan descrive cosa deve fare il repository per applicare una
// modifica: eventuale potatura delle occorrenze future e distacco
// della riga dal gruppo. Delete e update vanno eseguiti nella stessa
// transazione.
type EditPlan struct {
	// potare le sorelle del gruppo con data strettamente dopo Today
	PruneGroupID string
	// dopo la modifica la riga esce dal gruppo
	Detach bool
	// data pivot (oggi), iniettata dal chiamante
	Today string
}

// PlanEdit decide la transizione di stato per la modifica di una
// riga. keepRecurring è il valore del flag dopo la modifica; today è
// la data corrente del sistema, passata esplicitamente.
//
// Regole:
//   - riga fuori da ogni gruppo, o flag invariato: nessuna azione;
//   - membro attivo a cui viene tolto il flag: si cancellano le
//     occorrenze future del gruppo e la riga viene staccata. Le
//     occorrenze passate restano: sono lavoro già svolto.
//
// Rieseguire il piano su una riga già staccata è un no-op.
func PlanEdit(current models.Appointment, keepRecurring bool, today string) EditPlan {
	plan := EditPlan{Today: NormalizeDate(today)}

	if StateOf(current) != StateActiveMember {
		return plan
	}

	if keepRecurring {
		return plan
	}

	plan.PruneGroupID = *current.RecurrenceGroupID
	plan.Detach = true
	return plan
}

// IsFutureSibling indica se una riga del gruppo va potata rispetto al
// pivot: conta la data dell'occorrenza, non quella della riga editata.
// Confronto lessicografico stretto, le date sono normalizzate.
//
// Il repository gorm applica lo stesso criterio in SQL
// (`date > ?` in DetachFromGroup): ogni modifica qui va
// riportata anche lì.
func IsFutureSibling(date string, today string) bool {
	return NormalizeDate(date) > NormalizeDate(today)
}
