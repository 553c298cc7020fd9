package dto

import (
	"time"

	domain "github.com/lavajato/carwash-scheduler/internal/domain/appointment"
	"github.com/lavajato/carwash-scheduler/internal/models"
)

// ======================================================
// APPOINTMENT PROJECTION
// ======================================================

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CarSummary struct {
	ID    uint           `json:"id"`
	Model string         `json:"model"`
	Plate string         `json:"plate"`
	Size  models.CarSize `json:"size"`
}

type UnitSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type AppointmentDTO struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"user_id"`
	CarID  uint   `json:"car_id"`
	UnitID uint   `json:"unit_id"`
	Status string `json:"status"`

	Date time.Time `json:"date"`
	Time string    `json:"time"`

	FinalPrice float64 `json:"final_price"`

	IncludesPickup bool    `json:"includes_pickup"`
	PickupFee      float64 `json:"pickup_fee"`
	PickupAddress  string  `json:"pickup_address,omitempty"`
	PickupNotes    string  `json:"pickup_notes,omitempty"`

	ServiceIDs []uint             `json:"service_ids"`
	Services   []domain.PriceItem `json:"services"`

	User *UserSummary `json:"user,omitempty"`
	Car  *CarSummary  `json:"car,omitempty"`
	Unit *UnitSummary `json:"unit,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssembleAppointment é o único ponto que monta a projeção denormalizada
// de um agendamento; todos os caminhos de leitura passam por aqui para
// que service_ids e os resumos saiam sempre iguais.
func AssembleAppointment(
	ap *models.Appointment,
	serviceIDs []uint,
	services []models.Service,
) AppointmentDTO {

	out := AppointmentDTO{
		ID:             ap.ID,
		UserID:         ap.UserID,
		CarID:          ap.CarID,
		UnitID:         ap.UnitID,
		Status:         ap.Status,
		Date:           ap.Date,
		Time:           ap.Time,
		FinalPrice:     ap.FinalPrice,
		IncludesPickup: ap.IncludesPickup,
		PickupFee:      ap.PickupFee,
		PickupAddress:  ap.PickupAddress,
		PickupNotes:    ap.PickupNotes,
		CreatedAt:      ap.CreatedAt,
		UpdatedAt:      ap.UpdatedAt,
	}

	if serviceIDs == nil {
		serviceIDs = []uint{}
	}
	out.ServiceIDs = serviceIDs

	out.Services = make([]domain.PriceItem, 0, len(services))
	for _, svc := range services {
		out.Services = append(out.Services, domain.PriceItem{
			ID:            svc.ID,
			Name:          svc.Name,
			BasePrice:     svc.BasePrice,
			SizeSurcharge: svc.SizeSurcharge,
		})
	}

	if ap.User.ID != 0 {
		out.User = &UserSummary{
			ID:    ap.User.ID,
			Name:  ap.User.Name,
			Phone: ap.User.Phone,
		}
	}
	if ap.Car.ID != 0 {
		out.Car = &CarSummary{
			ID:    ap.Car.ID,
			Model: ap.Car.Model,
			Plate: ap.Car.Plate,
			Size:  ap.Car.Size,
		}
	}
	if ap.Unit.ID != 0 {
		out.Unit = &UnitSummary{
			ID:      ap.Unit.ID,
			Name:    ap.Unit.Name,
			Address: ap.Unit.Address,
		}
	}

	return out
}
