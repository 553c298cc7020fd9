package models

import "time"

// Porte do carro, usado para escalar o adicional de cada serviço.
type CarSize string

const (
	SizeSmall  CarSize = "SMALL"
	SizeMedium CarSize = "MEDIUM"
	SizeLarge  CarSize = "LARGE"
)

type Car struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	Model string  `gorm:"size:100;not null" json:"model"`
	Plate string  `gorm:"size:10;uniqueIndex;not null" json:"plate"`
	Size  CarSize `gorm:"size:10;default:'MEDIUM'" json:"size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
