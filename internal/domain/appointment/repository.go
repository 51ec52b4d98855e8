package appointment

import (
	"context"

	"github.com/AtelierGestione/atelier-manager/internal/models"
)

type Repository interface {
	// -------- Employee --------
	GetEmployeeByID(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	// -------- Appointment (create) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CreateAppointmentBatch persiste tutte le righe in un'unica
	// transazione: o tutte o nessuna.
	CreateAppointmentBatch(
		ctx context.Context,
		aps []models.Appointment,
	) error

	// -------- Appointment (read) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Appointment (mutate) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// DetachFromGroup esegue un EditPlan: cancella le occorrenze
	// future del gruppo e salva la riga staccata, nella stessa
	// transazione. Restituisce gli id cancellati.
	DetachFromGroup(
		ctx context.Context,
		ap *models.Appointment,
		plan EditPlan,
	) ([]uint, error)

	// -------- Reconcile --------
	ClearRecurrenceFlags(
		ctx context.Context,
		ids []uint,
	) error

	DeleteAppointmentsByID(
		ctx context.Context,
		ids []uint,
	) error

	NormalizeAppointmentDate(
		ctx context.Context,
		id uint,
		date string,
	) error
}
