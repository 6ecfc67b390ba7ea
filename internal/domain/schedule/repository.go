package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agendamento-api/internal/models"
)

type Repository interface {
	// -------- Service (catálogo, somente leitura) --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
	) (*models.Client, error)

	SaveClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Appointment --------
	GetAppointmentByToken(
		ctx context.Context,
		token string,
	) (*models.Appointment, error)

	ListBookedForDay(
		ctx context.Context,
		date time.Time,
	) ([]Booked, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// InTx serializa a sequência checa-conflito-e-grava de uma data
	// contra outros escritores: transação no banco + trava de
	// processo. Leituras fora de InTx seguem concorrentes.
	InTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
