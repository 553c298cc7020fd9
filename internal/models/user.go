package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex;not null" json:"phone"`

	Address  string `gorm:"size:255" json:"address"`
	District string `gorm:"size:100" json:"district"`
	City     string `gorm:"size:100" json:"city"`
	State    string `gorm:"size:2" json:"state"`
	Zip      string `gorm:"size:9" json:"zip"`

	LoyaltyPoints int `gorm:"default:0" json:"loyalty_points"`

	// Preenchidos depois do primeiro login, no "completar cadastro"
	BirthDate   *time.Time `json:"birth_date"`
	AccountType string     `gorm:"size:20" json:"account_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
