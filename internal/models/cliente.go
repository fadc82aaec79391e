package models

import "time"

type Cliente struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Cedula    string    `gorm:"uniqueIndex;not null" json:"cedula"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	Apellido  string    `gorm:"not null" json:"apellido"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cliente) TableName() string { return "clientes" }
