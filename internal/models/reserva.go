package models

import "time"

// Reserva stores check-in/check-out as date-only values at UTC midnight.
// The interval is half-open: [fecha_ingreso, fecha_salida).
type Reserva struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	IDHotel          uint      `gorm:"column:id_hotel;not null" json:"id_hotel"`
	IDHabitacion     uint      `gorm:"column:id_habitacion;not null" json:"id_habitacion"`
	FechaIngreso     time.Time `gorm:"column:fecha_ingreso;type:date;not null" json:"fecha_ingreso"`
	FechaSalida      time.Time `gorm:"column:fecha_salida;type:date;not null" json:"fecha_salida"`
	IDCliente        uint      `gorm:"column:id_cliente;not null" json:"id_cliente"`
	CantidadPersonas int       `gorm:"not null;default:1" json:"cantidad_personas"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Hotel      *Hotel      `gorm:"foreignKey:IDHotel" json:"Hotel,omitempty"`
	Habitacion *Habitacion `gorm:"foreignKey:IDHabitacion" json:"Habitacion,omitempty"`
	Cliente    *Cliente    `gorm:"foreignKey:IDCliente" json:"Cliente,omitempty"`
}

func (Reserva) TableName() string { return "reservas" }
