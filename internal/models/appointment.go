package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	CarID uint `json:"car_id"`
	Car   Car  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"car"`

	UnitID uint `json:"unit_id"`
	Unit   Unit `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"unit"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	Date time.Time `json:"date"`
	Time string    `gorm:"size:5" json:"time"`

	// Preço calculado na criação e congelado; mudanças de preço nos
	// serviços não afetam agendamentos existentes.
	FinalPrice float64 `json:"final_price"`

	IncludesPickup bool    `gorm:"default:false" json:"includes_pickup"`
	PickupFee      float64 `json:"pickup_fee"`
	PickupAddress  string  `gorm:"size:255" json:"pickup_address"`
	PickupNotes    string  `gorm:"size:255" json:"pickup_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Registro de associação entre agendamento e serviço, criado uma única
// vez no momento da reserva.
type AppointmentService struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`
	ServiceID     uint `gorm:"index" json:"service_id"`
}
