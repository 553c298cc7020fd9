package appointment

import (
	"context"
	"time"

	"github.com/lavajato/carwash-scheduler/internal/audit"
	domain "github.com/lavajato/carwash-scheduler/internal/domain/appointment"
	"github.com/lavajato/carwash-scheduler/internal/dto"
	"github.com/lavajato/carwash-scheduler/internal/httperr"
	"github.com/lavajato/carwash-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint
	CarID  uint
	UnitID uint

	Date time.Time
	Time string

	ServiceIDs []uint

	IncludesPickup bool
	PickupAddress  string
	PickupNotes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// Taxa fixa de leva e traz efetivamente cobrada (config).
	pickupFee float64
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	pickupFee float64,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		audit:     audit,
		pickupFee: pickupFee,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*dto.AppointmentDTO, error) {

	// --------------------------------------------------
	// 1. Referências: usuário, carro e unidade precisam existir
	// --------------------------------------------------
	if _, err := uc.repo.GetUserByID(ctx, in.UserID); err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	car, err := uc.repo.GetCarByID(ctx, in.CarID)
	if err != nil {
		return nil, httperr.ErrBusiness("car_not_found")
	}

	if _, err := uc.repo.GetUnitByID(ctx, in.UnitID); err != nil {
		return nil, httperr.ErrBusiness("unit_not_found")
	}

	// --------------------------------------------------
	// 2. Preço dos serviços pelo porte do carro
	// --------------------------------------------------
	services, err := uc.repo.FindServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, httperr.ErrBusiness("no_services_found")
	}

	breakdown := domain.CalculatePrice(car.Size, services)

	// --------------------------------------------------
	// 3. Leva e traz (taxa fixa, independente de distância)
	// --------------------------------------------------
	var pickupFee float64
	if in.IncludesPickup {
		pickupFee = uc.pickupFee
	}

	// --------------------------------------------------
	// 4. Criação transacional: agendamento + associações
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:         in.UserID,
		CarID:          in.CarID,
		UnitID:         in.UnitID,
		Status:         string(domain.InitialStatus()),
		Date:           in.Date,
		Time:           in.Time,
		FinalPrice:     breakdown.FinalPrice + pickupFee,
		IncludesPickup: in.IncludesPickup,
		PickupFee:      pickupFee,
		PickupAddress:  in.PickupAddress,
		PickupNotes:    in.PickupNotes,
	}

	if err := uc.repo.CreateAppointmentWithServices(ctx, ap, in.ServiceIDs); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// --------------------------------------------------
	// 5. Resposta materializada com resumos e serviços
	// --------------------------------------------------
	full, err := uc.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	return assembleOne(ctx, uc.repo, full)
}
