package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/lavajato/carwash-scheduler/internal/domain/appointment"
	"github.com/lavajato/carwash-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Registries
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetCarByID(
	ctx context.Context,
	id uint,
) (*models.Car, error) {

	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *AppointmentGormRepository) GetUnitByID(
	ctx context.Context,
	id uint,
) (*models.Unit, error) {

	var unit models.Unit
	if err := r.db.WithContext(ctx).First(&unit, id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) FindServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointmentWithServices(
	ctx context.Context,
	ap *models.Appointment,
	serviceIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		for _, serviceID := range serviceIDs {
			link := models.AppointmentService{
				AppointmentID: ap.ID,
				ServiceID:     serviceID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointmentWithServices(
	ctx context.Context,
	appointmentID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Integridade referencial: associações antes da linha principal.
		if err := tx.
			Where("appointment_id = ?", appointmentID).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Appointment{}, appointmentID).Error
	})
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Car").
		Preload("Unit").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Car").
		Preload("Unit").
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Car").
		Preload("Unit").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Associations
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentServices(
	ctx context.Context,
	appointmentIDs []uint,
) ([]models.AppointmentService, error) {

	if len(appointmentIDs) == 0 {
		return []models.AppointmentService{}, nil
	}

	var links []models.AppointmentService
	if err := r.db.WithContext(ctx).
		Where("appointment_id IN ?", appointmentIDs).
		Order("id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}

	return links, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
