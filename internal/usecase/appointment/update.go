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

// Campi opzionali: nil = non toccare.
type UpdateAppointmentInput struct {
	AppointmentID uint

	EmployeeID  *uint
	Date        *string
	StartTime   *string
	ClientName  *string
	ServiceType *string

	PaymentMethod *string
	Price         *float64
	ProductSold   *string

	// Recurring omesso su un membro attivo vale come false:
	// il frontend manda il set completo dei campi del form.
	Recurring *bool

	// data odierna del sistema, iniettata dal chiamante
	Today string
}

type UpdateAppointmentResult struct {
	Appointment *models.Appointment `json:"appointment"`
	DeletedIDs  []uint              `json:"deleted_ids,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*UpdateAppointmentResult, error) {

	current, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// --------------------------------------------------
	// 1. Decisione sulla serie, PRIMA di toccare i campi
	// --------------------------------------------------
	keepRecurring := current.IsRecurring
	if in.Recurring != nil {
		keepRecurring = *in.Recurring
	} else if domain.StateOf(*current) == domain.StateActiveMember {
		// flag omesso su un membro attivo = disdetta della fissa
		keepRecurring = false
	}

	plan := domain.PlanEdit(*current, keepRecurring, in.Today)

	// --------------------------------------------------
	// 2. Applicazione campi
	// --------------------------------------------------
	if err := uc.applyFields(ctx, current, in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Persistenza (con eventuale potatura del gruppo)
	// --------------------------------------------------
	if !plan.Detach {
		if err := uc.repo.UpdateAppointment(ctx, current); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_updated",
			Entity:   "appointment",
			EntityID: &current.ID,
		})

		return &UpdateAppointmentResult{Appointment: current}, nil
	}

	current.IsRecurring = false
	current.RecurrenceGroupID = nil

	deleted, err := uc.repo.DetachFromGroup(ctx, current, plan)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "recurring_series_cancelled",
		Entity:   "appointment",
		EntityID: &current.ID,
		Metadata: map[string]any{
			"group_id":      plan.PruneGroupID,
			"deleted_count": len(deleted),
		},
	})

	return &UpdateAppointmentResult{
		Appointment: current,
		DeletedIDs:  deleted,
	}, nil
}

func (uc *UpdateAppointment) applyFields(
	ctx context.Context,
	ap *models.Appointment,
	in UpdateAppointmentInput,
) error {

	if in.EmployeeID != nil {
		if _, err := uc.repo.GetEmployeeByID(ctx, *in.EmployeeID); err != nil {
			return httperr.ErrBusiness("employee_not_found")
		}
		ap.EmployeeID = *in.EmployeeID
	}

	if in.Date != nil {
		date := domain.NormalizeDate(*in.Date)
		if _, err := domain.ParseDate(date); err != nil {
			return httperr.ErrBusiness("invalid_date")
		}
		ap.Date = date
	}

	if in.ServiceType != nil {
		ap.ServiceType = *in.ServiceType
	}

	// lo spostamento di orario o il cambio servizio rigenerano la fine
	if in.StartTime != nil || in.ServiceType != nil {
		start := ap.StartTime
		if in.StartTime != nil {
			start = *in.StartTime
		}

		end, err := domain.EndTimeFor(start, ap.ServiceType)
		if err != nil {
			return err
		}
		ap.StartTime = start
		ap.EndTime = end
	}

	if in.ClientName != nil {
		ap.ClientName = *in.ClientName
	}

	if in.PaymentMethod != nil {
		if !domain.IsValidPaymentMethod(*in.PaymentMethod) {
			return httperr.ErrBusiness("invalid_payment_method")
		}
		ap.PaymentMethod = *in.PaymentMethod
	}

	if in.Price != nil {
		ap.Price = *in.Price
	}

	if in.ProductSold != nil {
		if *in.ProductSold == "" {
			ap.ProductSold = nil
		} else {
			ap.ProductSold = in.ProductSold
		}
	}

	return nil
}
