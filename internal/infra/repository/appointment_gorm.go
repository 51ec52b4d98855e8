package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *AppointmentGormRepository) GetEmployeeByID(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) CreateAppointmentBatch(
	ctx context.Context,
	aps []models.Appointment,
) error {

	// unica transazione: una serie non viene mai persistita a metà
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range aps {
			if err := tx.Create(&aps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Appointment (mutate)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// DetachFromGroup esegue potatura e distacco nella stessa transazione:
// senza, un fallimento a metà lascerebbe occorrenze orfane nel gruppo.
func (r *AppointmentGormRepository) DetachFromGroup(
	ctx context.Context,
	ap *models.Appointment,
	plan domain.EditPlan,
) ([]uint, error) {

	var deleted []uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var siblings []models.Appointment
		// date > Today: stesso confronto stretto di
		// domain.IsFutureSibling
		if err := tx.
			Select("id").
			Where(
				"recurrence_group_id = ? AND id <> ? AND date > ?",
				plan.PruneGroupID, ap.ID, plan.Today,
			).
			Find(&siblings).Error; err != nil {
			return err
		}

		for _, s := range siblings {
			deleted = append(deleted, s.ID)
		}

		if len(deleted) > 0 {
			if err := tx.Delete(&models.Appointment{}, deleted).Error; err != nil {
				return err
			}
		}

		// Save non azzera i campi puntatore a nil in modo affidabile:
		// gruppo e flag si azzerano con un update esplicito.
		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"is_recurring":        false,
				"recurrence_group_id": nil,
			}).Error; err != nil {
			return err
		}

		return tx.Save(ap).Error
	})

	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// --------------------------------------------------
// Reconcile
// --------------------------------------------------

func (r *AppointmentGormRepository) ClearRecurrenceFlags(
	ctx context.Context,
	ids []uint,
) error {

	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"is_recurring":        false,
			"recurrence_group_id": nil,
		}).Error
}

func (r *AppointmentGormRepository) DeleteAppointmentsByID(
	ctx context.Context,
	ids []uint,
) error {

	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, ids).Error
}

func (r *AppointmentGormRepository) NormalizeAppointmentDate(
	ctx context.Context,
	id uint,
	date string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("date", date).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
