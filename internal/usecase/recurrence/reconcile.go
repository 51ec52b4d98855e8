package recurrence

import (
	"context"
	"fmt"

	"github.com/AtelierGestione/atelier-manager/internal/audit"
	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

// ======================================================
// RICONCILIAZIONE SERIE (operazione amministrativa)
// ======================================================

// Summary è il riepilogo restituito al chiamante: id delle righe
// confermate, cancellate (doppioni) e ripulite dal flag, più gli
// errori riga per riga.
type Summary struct {
	Kept    []uint   `json:"kept"`
	Deleted []uint   `json:"deleted"`
	Updated []uint   `json:"updated"`
	Errors  []string `json:"errors"`
}

type Reconcile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReconcile(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Reconcile {
	return &Reconcile{
		repo:  repo,
		audit: audit,
	}
}

// Execute ripassa l'intera tabella appuntamenti e normalizza lo stato
// delle serie:
//
//   - date con suffisso orario vengono riportate a YYYY-MM-DD;
//   - righe marcate ricorrenti il cui gruppo NON forma una serie
//     settimanale perdono flag e gruppo;
//   - doppioni sullo stesso giorno dentro una serie vera vengono
//     cancellati;
//   - i membri delle serie genuine restano intatti.
//
// Gli errori di singola riga non fermano il giro: finiscono nel
// riepilogo.
func (uc *Reconcile) Execute(ctx context.Context) (*Summary, error) {

	aps, err := uc.repo.ListAllAppointments(ctx)
	if err != nil {
		return nil, err
	}

	out := &Summary{
		Kept:    []uint{},
		Deleted: []uint{},
		Updated: []uint{},
		Errors:  []string{},
	}

	// --------------------------------------------------
	// 1. Normalizzazione date sporche
	// --------------------------------------------------
	for i := range aps {
		normalized := domain.NormalizeDate(aps[i].Date)
		if normalized == aps[i].Date {
			continue
		}

		if err := uc.repo.NormalizeAppointmentDate(ctx, aps[i].ID, normalized); err != nil {
			out.Errors = append(out.Errors,
				fmt.Sprintf("appuntamento %d: normalizzazione data: %v", aps[i].ID, err))
			continue
		}
		aps[i].Date = normalized
		out.Updated = append(out.Updated, aps[i].ID)
	}

	// --------------------------------------------------
	// 2. Verifica gruppo per gruppo
	// --------------------------------------------------
	for _, group := range domain.GroupByKey(aps) {
		uc.reconcileGroup(ctx, group, out)
	}

	// una riga normalizzata in pass 1 e ripulita in pass 2 va
	// riportata una volta sola
	out.Updated = dedupeIDs(out.Updated)

	uc.audit.Dispatch(audit.Event{
		Action: "recurrences_reconciled",
		Entity: "appointment",
		Metadata: map[string]any{
			"kept":    len(out.Kept),
			"deleted": len(out.Deleted),
			"updated": len(out.Updated),
			"errors":  len(out.Errors),
		},
	})

	return out, nil
}

func (uc *Reconcile) reconcileGroup(
	ctx context.Context,
	group []models.Appointment,
	out *Summary,
) {

	flagged := flaggedIDs(group)

	if domain.IsWeeklySeries(group) {
		// serie vera: via i doppioni, il resto si conferma
		dups := domain.DuplicateIDs(group)
		dupSet := make(map[uint]bool, len(dups))

		if len(dups) > 0 {
			if err := uc.repo.DeleteAppointmentsByID(ctx, dups); err != nil {
				out.Errors = append(out.Errors,
					fmt.Sprintf("gruppo %s: cancellazione doppioni: %v", groupLabel(group), err))
			} else {
				out.Deleted = append(out.Deleted, dups...)
				for _, id := range dups {
					dupSet[id] = true
				}
			}
		}

		for _, ap := range group {
			if !dupSet[ap.ID] {
				out.Kept = append(out.Kept, ap.ID)
			}
		}
		return
	}

	// gruppo non settimanale: le righe marcate ricorrenti sono falsi
	// positivi storici, si ripuliscono
	if len(flagged) == 0 {
		return
	}

	if err := uc.repo.ClearRecurrenceFlags(ctx, flagged); err != nil {
		out.Errors = append(out.Errors,
			fmt.Sprintf("gruppo %s: rimozione flag: %v", groupLabel(group), err))
		return
	}
	out.Updated = append(out.Updated, flagged...)
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func flaggedIDs(group []models.Appointment) []uint {
	var ids []uint
	for _, ap := range group {
		if ap.IsRecurring || ap.RecurrenceGroupID != nil {
			ids = append(ids, ap.ID)
		}
	}
	return ids
}

func groupLabel(group []models.Appointment) string {
	k := domain.KeyOf(group[0])
	return fmt.Sprintf("%s/%d/%s", k.ClientName, k.EmployeeID, k.StartTime)
}
