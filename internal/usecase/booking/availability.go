package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agendamento-api/internal/domain/schedule"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve os inícios livres "HH:MM" em ordem crescente.
// Consulta pura: qualquer data vale, inclusive domingo ou passado.
// A regra de admissão só roda na hora de gravar.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
	serviceID uint,
) ([]string, error) {

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedForDay(ctx, date)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.DurationMin) * time.Minute
	return domain.FreeSlots(date, duration, booked), nil
}
