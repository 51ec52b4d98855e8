package appointment

import (
	"context"

	"github.com/AtelierGestione/atelier-manager/internal/audit"
	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancella una singola riga. La cancellazione di un membro di
// serie non tocca le sorelle: per disdire la fissa si usa la modifica
// con flag tolto.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
) error {

	if _, err := uc.repo.GetAppointmentByID(ctx, id); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
