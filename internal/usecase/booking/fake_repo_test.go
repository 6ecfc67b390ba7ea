package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agendamento-api/internal/domain/schedule"
	"github.com/BruksfildServices01/agendamento-api/internal/models"
)

type fakeRepo struct {
	getService       func(ctx context.Context, id uint) (*models.Service, error)
	listServices     func(ctx context.Context) ([]models.Service, error)
	getOrCreate      func(ctx context.Context, name, phone string) (*models.Client, error)
	saveClient       func(ctx context.Context, client *models.Client) error
	getByToken       func(ctx context.Context, token string) (*models.Appointment, error)
	listBookedForDay func(ctx context.Context, date time.Time) ([]domain.Booked, error)
	listAll          func(ctx context.Context) ([]models.Appointment, error)
	create           func(ctx context.Context, ap *models.Appointment) error
	update           func(ctx context.Context, ap *models.Appointment) error
	delete           func(ctx context.Context, ap *models.Appointment) error
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if f.getService == nil {
		panic("GetService not configured")
	}
	return f.getService(ctx, id)
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	if f.listServices == nil {
		panic("ListServices not configured")
	}
	return f.listServices(ctx)
}

func (f *fakeRepo) GetOrCreateClient(ctx context.Context, name, phone string) (*models.Client, error) {
	if f.getOrCreate == nil {
		panic("GetOrCreateClient not configured")
	}
	return f.getOrCreate(ctx, name, phone)
}

func (f *fakeRepo) SaveClient(ctx context.Context, client *models.Client) error {
	if f.saveClient == nil {
		panic("SaveClient not configured")
	}
	return f.saveClient(ctx, client)
}

func (f *fakeRepo) GetAppointmentByToken(ctx context.Context, token string) (*models.Appointment, error) {
	if f.getByToken == nil {
		panic("GetAppointmentByToken not configured")
	}
	return f.getByToken(ctx, token)
}

func (f *fakeRepo) ListBookedForDay(ctx context.Context, date time.Time) ([]domain.Booked, error) {
	if f.listBookedForDay == nil {
		return nil, nil
	}
	return f.listBookedForDay(ctx, date)
}

func (f *fakeRepo) ListAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	if f.listAll == nil {
		panic("ListAllAppointments not configured")
	}
	return f.listAll(ctx)
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.create == nil {
		panic("CreateAppointment not configured")
	}
	return f.create(ctx, ap)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.update == nil {
		panic("UpdateAppointment not configured")
	}
	return f.update(ctx, ap)
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.delete == nil {
		panic("DeleteAppointment not configured")
	}
	return f.delete(ctx, ap)
}

func (f *fakeRepo) InTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	return fn(f)
}

var _ domain.Repository = (*fakeRepo)(nil)
