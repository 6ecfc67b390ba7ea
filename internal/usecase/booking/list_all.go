package booking

import (
	"context"

	domain "github.com/BruksfildServices01/agendamento-api/internal/domain/schedule"
	"github.com/BruksfildServices01/agendamento-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute é a listagem completa da agenda (visão do barbeiro).
// A autorização fica na borda, no middleware.
func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListAllAppointments(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			Client:  ap.Client.Name,
			Phone:   ap.Client.Phone,
			Service: ap.Service.Name,
			Date:    ap.DateString(),
			Time:    ap.TimeString(),
		})
	}

	return out, nil
}
