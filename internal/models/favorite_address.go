package models

import "time"

// Endereço favorito do cliente (ex: Casa, Trabalho), usado como
// endereço de busca no leva e traz.
type FavoriteAddress struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Name     string `gorm:"size:50;not null" json:"name"`
	Street   string `gorm:"size:100;not null" json:"street"`
	Number   string `gorm:"size:10" json:"number"`
	District string `gorm:"size:100" json:"district"`
	City     string `gorm:"size:100" json:"city"`
	State    string `gorm:"size:2" json:"state"`
	Zip      string `gorm:"size:9" json:"zip"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
