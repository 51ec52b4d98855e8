package appointment

import (
	"context"

	"github.com/AtelierGestione/atelier-manager/internal/audit"
	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/httperr"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	EmployeeID uint

	Date      string
	StartTime string

	ClientName  string
	ServiceType string

	PaymentMethod string
	Price         float64
	ProductSold   *string

	// true = prenotazione fissa settimanale
	Recurring bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute crea un appuntamento singolo, oppure — se richiesta la
// ricorrenza — materializza l'intera serie settimanale in un'unica
// transazione. Restituisce il seme della serie.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Dipendente
	// --------------------------------------------------
	emp, err := uc.repo.GetEmployeeByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	// --------------------------------------------------
	// 2. Data e orario
	// --------------------------------------------------
	date := domain.NormalizeDate(in.Date)
	if _, err := domain.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	endTime, err := domain.EndTimeFor(in.StartTime, in.ServiceType)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Pagamento
	// --------------------------------------------------
	payment := in.PaymentMethod
	if payment == "" {
		payment = domain.PaymentCash
	}
	if !domain.IsValidPaymentMethod(payment) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	seed := models.Appointment{
		EmployeeID:    emp.ID,
		Date:          date,
		StartTime:     in.StartTime,
		EndTime:       endTime,
		ClientName:    in.ClientName,
		ServiceType:   in.ServiceType,
		PaymentMethod: payment,
		Price:         in.Price,
		ProductSold:   in.ProductSold,
	}

	// --------------------------------------------------
	// 4. Singolo oppure serie
	// --------------------------------------------------
	if !in.Recurring {
		if err := uc.repo.CreateAppointment(ctx, &seed); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &seed.ID,
		})

		return &seed, nil
	}

	series, err := domain.MaterializeWeekly(seed, domain.DefaultRecurrenceWeeks)
	if err != nil {
		return nil, err
	}

	// o tutte le 52 righe o nessuna
	if err := uc.repo.CreateAppointmentBatch(ctx, series); err != nil {
		return nil, err
	}

	first := series[0]

	uc.audit.Dispatch(audit.Event{
		Action:   "recurring_series_created",
		Entity:   "appointment",
		EntityID: &first.ID,
		Metadata: map[string]any{
			"group_id": *first.RecurrenceGroupID,
			"weeks":    len(series),
		},
	})

	return &first, nil
}
