package appointment

import (
	"context"

	domain "github.com/AtelierGestione/atelier-manager/internal/domain/appointment"
	"github.com/AtelierGestione/atelier-manager/internal/httperr"
	"github.com/AtelierGestione/atelier-manager/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	normalized := domain.NormalizeDate(date)
	if _, err := domain.ParseDate(normalized); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListAppointmentsByDate(ctx, normalized)
}
