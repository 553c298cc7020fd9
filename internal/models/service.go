package models

import "time"

type Service struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	BasePrice float64 `json:"base_price"`

	// Adicional por porte: valor cheio para porte MEDIUM, escalado
	// pelo multiplicador de porte nos demais.
	SizeSurcharge float64 `json:"size_surcharge"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
