package booking

import (
	"context"

	domain "github.com/BruksfildServices01/agendamento-api/internal/domain/schedule"
	"github.com/BruksfildServices01/agendamento-api/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	token string,
) (*models.Appointment, error) {
	return uc.repo.GetAppointmentByToken(ctx, token)
}
