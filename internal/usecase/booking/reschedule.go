package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agendamento-api/internal/audit"
	domain "github.com/BruksfildServices01/agendamento-api/internal/domain/schedule"
	"github.com/BruksfildServices01/agendamento-api/internal/httperr"
	"github.com/BruksfildServices01/agendamento-api/internal/models"
	"github.com/BruksfildServices01/agendamento-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Campos vazios/zero = "não mexer". Só o que vier preenchido é
// aplicado sobre uma cópia do registro atual.
type RescheduleAppointmentInput struct {
	Token string

	ClientName  string
	ClientPhone string

	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	now func() time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditd *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: auditd,
		now:   timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByToken(ctx, in.Token)
	if err != nil {
		return nil, err
	}

	// Edições de cliente são aplicadas e gravadas ANTES da validação
	// do agendamento e ficam mesmo se ela falhar depois; clientes
	// existentes dependem desse comportamento.
	if in.ClientName != "" || in.ClientPhone != "" {
		if in.ClientName != "" {
			ap.Client.Name = in.ClientName
		}
		if in.ClientPhone != "" {
			ap.Client.Phone = in.ClientPhone
		}
		if err := uc.repo.SaveClient(ctx, &ap.Client); err != nil {
			return nil, err
		}
	}

	// Candidato: cópia do registro atual com os patches por cima,
	// nunca o registro vivo pela metade.
	candidate := *ap

	svc := ap.Service
	if in.ServiceID != 0 {
		found, err := uc.repo.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		svc = *found
		candidate.ServiceID = svc.ID
	}

	dateStr := ap.DateString()
	timeStr := ap.TimeString()
	if in.Date != "" {
		dateStr = in.Date
	}
	if in.Time != "" {
		timeStr = in.Time
	}

	start, err := timezone.ParseDateTime(dateStr, timeStr)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	candidate.StartTime = start

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		booked, err := tx.ListBookedForDay(ctx, start)
		if err != nil {
			return err
		}

		proposal := domain.Candidate{
			Start:     start,
			Duration:  time.Duration(svc.DurationMin) * time.Minute,
			ExcludeID: ap.ID,
		}
		if err := domain.Validate(uc.now(), proposal, booked); err != nil {
			return err
		}

		return tx.UpdateAppointment(ctx, &candidate)
	})
	if err != nil {
		return nil, err
	}

	candidate.Service = svc

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingRescheduled,
		Entity:   "appointment",
		EntityID: &candidate.ID,
		Metadata: map[string]any{"token": candidate.Token},
	})

	return &candidate, nil
}
