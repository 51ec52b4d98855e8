package appointment

import (
	"context"
	"errors"
	"sort"

	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

// fakeRepo è un Repository in memoria con la stessa semantica
// transazionale di quello gorm: il batch o entra tutto o niente.
type fakeRepo struct {
	nextID       uint
	employees    map[uint]models.Employee
	appointments map[uint]models.Appointment

	batchCalls int
	failBatch  bool
}

func newFakeRepo(employees ...models.Employee) *fakeRepo {
	r := &fakeRepo{
		nextID:       1,
		employees:    make(map[uint]models.Employee),
		appointments: make(map[uint]models.Appointment),
	}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeRepo) add(ap models.Appointment) models.Appointment {
	if ap.ID == 0 {
		ap.ID = r.nextID
		r.nextID++
	} else if ap.ID >= r.nextID {
		r.nextID = ap.ID + 1
	}
	r.appointments[ap.ID] = ap
	return ap
}

func (r *fakeRepo) all() []models.Appointment {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// -------- Employee --------

func (r *fakeRepo) GetEmployeeByID(_ context.Context, id uint) (*models.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &e, nil
}

// -------- Appointment (create) --------

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	*ap = r.add(*ap)
	return nil
}

func (r *fakeRepo) CreateAppointmentBatch(_ context.Context, aps []models.Appointment) error {
	r.batchCalls++
	if r.failBatch {
		return errors.New("insert failed")
	}
	for i := range aps {
		aps[i] = r.add(aps[i])
	}
	return nil
}

// -------- Appointment (read) --------

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &ap, nil
}

func (r *fakeRepo) ListAppointmentsByDate(_ context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.all() {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.all() {
		if ap.Date >= from && ap.Date < to {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAllAppointments(_ context.Context) ([]models.Appointment, error) {
	return r.all(), nil
}

// -------- Appointment (mutate) --------

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return errors.New("record not found")
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) DetachFromGroup(
	_ context.Context,
	ap *models.Appointment,
	plan domain.EditPlan,
) ([]uint, error) {

	var deleted []uint
	for _, sibling := range r.all() {
		if sibling.ID == ap.ID {
			continue
		}
		if sibling.RecurrenceGroupID == nil || *sibling.RecurrenceGroupID != plan.PruneGroupID {
			continue
		}
		if domain.IsFutureSibling(sibling.Date, plan.Today) {
			delete(r.appointments, sibling.ID)
			deleted = append(deleted, sibling.ID)
		}
	}

	r.appointments[ap.ID] = *ap
	return deleted, nil
}

// -------- Reconcile --------

func (r *fakeRepo) ClearRecurrenceFlags(_ context.Context, ids []uint) error {
	for _, id := range ids {
		ap, ok := r.appointments[id]
		if !ok {
			continue
		}
		ap.IsRecurring = false
		ap.RecurrenceGroupID = nil
		r.appointments[id] = ap
	}
	return nil
}

func (r *fakeRepo) DeleteAppointmentsByID(_ context.Context, ids []uint) error {
	for _, id := range ids {
		delete(r.appointments, id)
	}
	return nil
}

func (r *fakeRepo) NormalizeAppointmentDate(_ context.Context, id uint, date string) error {
	ap, ok := r.appointments[id]
	if !ok {
		return errors.New("record not found")
	}
	ap.Date = date
	r.appointments[id] = ap
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
