package appointment

import (
	"context"

	"github.com/lavajato/carwash-scheduler/internal/models"
)

type Repository interface {
	// -------- Registries --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetCarByID(
		ctx context.Context,
		id uint,
	) (*models.Car, error)

	GetUnitByID(
		ctx context.Context,
		id uint,
	) (*models.Unit, error)

	// -------- Service catalog --------
	// Ids desconhecidos são omitidos do resultado, sem erro.
	FindServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Appointment (write) --------
	// Cria o agendamento e as associações de serviço em uma única
	// transação; nada persiste se qualquer insert falhar.
	CreateAppointmentWithServices(
		ctx context.Context,
		ap *models.Appointment,
		serviceIDs []uint,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Remove primeiro as associações, depois o agendamento.
	DeleteAppointmentWithServices(
		ctx context.Context,
		appointmentID uint,
	) error

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// -------- Associations --------
	ListAppointmentServices(
		ctx context.Context,
		appointmentIDs []uint,
	) ([]models.AppointmentService, error)
}
