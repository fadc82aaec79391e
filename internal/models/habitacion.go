package models

import "time"

type Habitacion struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Numero          int       `gorm:"not null" json:"numero"`
	HotelID         uint      `gorm:"not null" json:"hotelId"`
	PosicionX       int       `gorm:"not null" json:"posicion_x"`
	PosicionY       int       `gorm:"not null" json:"posicion_y"`
	Piso            string    `json:"piso"`
	Capacidad       int       `gorm:"not null" json:"capacidad"`
	Caracteristicas string    `gorm:"type:text" json:"caracteristicas"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}

func (Habitacion) TableName() string { return "habitaciones" }
