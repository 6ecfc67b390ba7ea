package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/agendamento-api/internal/audit"
	domain "github.com/BruksfildServices01/agendamento-api/internal/domain/schedule"
	"github.com/BruksfildServices01/agendamento-api/internal/httperr"
	"github.com/BruksfildServices01/agendamento-api/internal/models"
	"github.com/BruksfildServices01/agendamento-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string

	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	now func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	auditd *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: auditd,
		now:   timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// Cliente buscado-ou-criado pelo telefone; o nome de um cliente
	// já conhecido não é sobrescrito numa criação.
	client, err := uc.repo.GetOrCreateClient(ctx, in.ClientName, in.ClientPhone)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Token:     uuid.NewString(),
		ClientID:  client.ID,
		ServiceID: svc.ID,
		StartTime: start,
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		booked, err := tx.ListBookedForDay(ctx, start)
		if err != nil {
			return err
		}

		candidate := domain.Candidate{
			Start:    start,
			Duration: time.Duration(svc.DurationMin) * time.Minute,
		}
		if err := domain.Validate(uc.now(), candidate, booked); err != nil {
			return err
		}

		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	ap.Client = *client
	ap.Service = *svc

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"token": ap.Token},
	})

	return ap, nil
}
