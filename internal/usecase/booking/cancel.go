package booking

import (
	"context"

	"github.com/BruksfildServices01/agendamento-api/internal/audit"
	domain "github.com/BruksfildServices01/agendamento-api/internal/domain/schedule"
	"github.com/BruksfildServices01/agendamento-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	auditd *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditd,
	}
}

// Execute apaga o agendamento de vez (hard delete). Cliente e catálogo
// ficam intactos. Devolve o registro apagado para o composer de
// notificação montar o resumo.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	token string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingCancelled,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"token": ap.Token},
	})

	return ap, nil
}
