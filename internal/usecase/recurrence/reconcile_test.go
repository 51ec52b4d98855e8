package recurrence

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/AtelierGestione/atelier-manager/internal/audit"
	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

// fake minimale: la riconciliazione usa solo lettura completa e le
// mutazioni di massa.
type fakeRepo struct {
	appointments map[uint]models.Appointment
}

func newFakeRepo(aps ...models.Appointment) *fakeRepo {
	r := &fakeRepo{appointments: make(map[uint]models.Appointment)}
	for _, ap := range aps {
		r.appointments[ap.ID] = ap
	}
	return r
}

func (r *fakeRepo) ListAllAppointments(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) ClearRecurrenceFlags(_ context.Context, ids []uint) error {
	for _, id := range ids {
		ap := r.appointments[id]
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

// inutilizzati dalla riconciliazione

func (r *fakeRepo) GetEmployeeByID(context.Context, uint) (*models.Employee, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeRepo) CreateAppointment(context.Context, *models.Appointment) error {
	return errors.New("not implemented")
}
func (r *fakeRepo) CreateAppointmentBatch(context.Context, []models.Appointment) error {
	return errors.New("not implemented")
}
func (r *fakeRepo) GetAppointmentByID(context.Context, uint) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeRepo) ListAppointmentsByDate(context.Context, string) ([]models.Appointment, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeRepo) ListAppointmentsForPeriod(context.Context, string, string) ([]models.Appointment, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeRepo) UpdateAppointment(context.Context, *models.Appointment) error {
	return errors.New("not implemented")
}
func (r *fakeRepo) DeleteAppointment(context.Context, uint) error {
	return errors.New("not implemented")
}
func (r *fakeRepo) DetachFromGroup(context.Context, *models.Appointment, domain.EditPlan) ([]uint, error) {
	return nil, errors.New("not implemented")
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// Tests
// --------------------------------------------------

func weekly(idStart uint, client string, employee uint, start string, group *string, recurring bool, dates ...string) []models.Appointment {
	out := make([]models.Appointment, 0, len(dates))
	for i, d := range dates {
		out = append(out, models.Appointment{
			ID:                idStart + uint(i),
			ClientName:        client,
			EmployeeID:        employee,
			StartTime:         start,
			Date:              d,
			RecurrenceGroupID: group,
			IsRecurring:       recurring,
		})
	}
	return out
}

func contains(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestReconcileKeepsGenuineSeries(t *testing.T) {
	group := "g1"
	rows := weekly(1, "Mario Rossi", 1, "10:00", &group, true,
		"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22")

	repo := newFakeRepo(rows...)
	uc := NewReconcile(repo, audit.NewDispatcher(nil))

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Kept) != 4 {
		t.Errorf("expected 4 kept rows, got %v", out.Kept)
	}
	if len(out.Deleted) != 0 || len(out.Updated) != 0 || len(out.Errors) != 0 {
		t.Errorf("nothing else should change: %+v", out)
	}

	for id, ap := range repo.appointments {
		if !ap.IsRecurring || ap.RecurrenceGroupID == nil {
			t.Errorf("row %d lost its series membership", id)
		}
	}
}

func TestReconcileClearsFalsePositives(t *testing.T) {
	group := "g2"
	// 14 giorni di intervallo: non è una fissa settimanale
	rows := weekly(1, "Anna Bianchi", 2, "09:00", &group, true,
		"2024-02-01", "2024-02-08", "2024-02-22")

	repo := newFakeRepo(rows...)
	uc := NewReconcile(repo, audit.NewDispatcher(nil))

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Updated) != 3 {
		t.Fatalf("expected 3 cleared rows, got %v", out.Updated)
	}
	if len(out.Kept) != 0 || len(out.Deleted) != 0 {
		t.Errorf("false positives must only be cleared: %+v", out)
	}

	for id, ap := range repo.appointments {
		if ap.IsRecurring || ap.RecurrenceGroupID != nil {
			t.Errorf("row %d still flagged after reconcile", id)
		}
	}
}

func TestReconcileDeletesSameDayDuplicates(t *testing.T) {
	group := "g3"
	rows := weekly(1, "Luca Verdi", 1, "15:00", &group, true,
		"2024-03-04", "2024-03-11", "2024-03-18")
	// doppione sul secondo lunedì
	rows = append(rows, models.Appointment{
		ID: 9, ClientName: "Luca Verdi", EmployeeID: 1, StartTime: "15:00",
		Date: "2024-03-11", RecurrenceGroupID: &group, IsRecurring: true,
	})

	repo := newFakeRepo(rows...)
	uc := NewReconcile(repo, audit.NewDispatcher(nil))

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !contains(out.Deleted, 9) || len(out.Deleted) != 1 {
		t.Errorf("expected only the duplicate to go, got %v", out.Deleted)
	}
	if len(out.Kept) != 3 {
		t.Errorf("expected 3 kept rows, got %v", out.Kept)
	}
	if _, ok := repo.appointments[9]; ok {
		t.Error("duplicate row still present")
	}
}

func TestReconcileNormalizesTimestampDates(t *testing.T) {
	repo := newFakeRepo(models.Appointment{
		ID: 1, ClientName: "Sara Blu", EmployeeID: 1, StartTime: "11:00",
		Date: "2024-04-01T00:00:00Z",
	})
	uc := NewReconcile(repo, audit.NewDispatcher(nil))

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !contains(out.Updated, 1) {
		t.Errorf("expected the dirty date row in updated, got %v", out.Updated)
	}
	if repo.appointments[1].Date != "2024-04-01" {
		t.Errorf("date not normalized: %q", repo.appointments[1].Date)
	}
}

// Riga con data sporca dentro un gruppo falso positivo: normalizzata
// in pass 1 e ripulita in pass 2, ma in Updated deve comparire una
// volta sola.
func TestReconcileReportsEachRowOnce(t *testing.T) {
	group := "g4"
	rows := weekly(1, "Elena Gialli", 3, "14:00", &group, true,
		"2024-06-03", "2024-06-10")
	rows = append(rows, models.Appointment{
		ID: 3, ClientName: "Elena Gialli", EmployeeID: 3, StartTime: "14:00",
		Date: "2024-06-24T00:00:00Z", RecurrenceGroupID: &group, IsRecurring: true,
	})

	repo := newFakeRepo(rows...)
	uc := NewReconcile(repo, audit.NewDispatcher(nil))

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[uint]int)
	for _, id := range out.Updated {
		seen[id]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("row %d reported %d times in updated", id, n)
		}
	}
	if seen[3] != 1 {
		t.Errorf("dirty-date row should appear exactly once, got %d", seen[3])
	}
}

func TestReconcileIgnoresUnflaggedSingles(t *testing.T) {
	repo := newFakeRepo(
		models.Appointment{ID: 1, ClientName: "Walk-in", EmployeeID: 1, StartTime: "10:00", Date: "2024-05-02"},
		models.Appointment{ID: 2, ClientName: "Walk-in 2", EmployeeID: 1, StartTime: "16:00", Date: "2024-05-03"},
	)
	uc := NewReconcile(repo, audit.NewDispatcher(nil))

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Kept)+len(out.Deleted)+len(out.Updated)+len(out.Errors) != 0 {
		t.Errorf("plain single appointments must pass through untouched: %+v", out)
	}
}
