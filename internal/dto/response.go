package dto

import (
	"github.com/ljbenitez/hotel-reservas/internal/models"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse carries the status text of update/delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}

type HotelResponse struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

type HabitacionResponse struct {
	ID              uint   `json:"id"`
	Numero          int    `json:"numero"`
	HotelID         uint   `json:"hotelId"`
	PosicionX       int    `json:"posicion_x"`
	PosicionY       int    `json:"posicion_y"`
	Piso            string `json:"piso"`
	Capacidad       int    `json:"capacidad"`
	Caracteristicas string `json:"caracteristicas"`
}

type ClienteResponse struct {
	ID       uint   `json:"id"`
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

type ReservaResponse struct {
	ID               uint   `json:"id"`
	IDHotel          uint   `json:"id_hotel"`
	IDHabitacion     uint   `json:"id_habitacion"`
	FechaIngreso     string `json:"fecha_ingreso"`
	FechaSalida      string `json:"fecha_salida"`
	IDCliente        uint   `json:"id_cliente"`
	CantidadPersonas int    `json:"cantidad_personas"`
}

// ReservaDetalleResponse is the denormalized view returned by listReservas.
// The association keys keep the capitalized names the API has always used.
type ReservaDetalleResponse struct {
	ReservaResponse
	Hotel      *HotelResponse      `json:"Hotel,omitempty"`
	Habitacion *HabitacionResponse `json:"Habitacion,omitempty"`
	Cliente    *ClienteResponse    `json:"Cliente,omitempty"`
}

func ToHotelResponse(h *models.Hotel) HotelResponse {
	return HotelResponse{ID: h.ID, Nombre: h.Nombre, Direccion: h.Direccion}
}

func ToHabitacionResponse(h *models.Habitacion) HabitacionResponse {
	return HabitacionResponse{
		ID:              h.ID,
		Numero:          h.Numero,
		HotelID:         h.HotelID,
		PosicionX:       h.PosicionX,
		PosicionY:       h.PosicionY,
		Piso:            h.Piso,
		Capacidad:       h.Capacidad,
		Caracteristicas: h.Caracteristicas,
	}
}

func ToClienteResponse(c *models.Cliente) ClienteResponse {
	return ClienteResponse{ID: c.ID, Cedula: c.Cedula, Nombre: c.Nombre, Apellido: c.Apellido}
}

func ToReservaResponse(r *models.Reserva) ReservaResponse {
	return ReservaResponse{
		ID:               r.ID,
		IDHotel:          r.IDHotel,
		IDHabitacion:     r.IDHabitacion,
		FechaIngreso:     FormatFecha(r.FechaIngreso),
		FechaSalida:      FormatFecha(r.FechaSalida),
		IDCliente:        r.IDCliente,
		CantidadPersonas: r.CantidadPersonas,
	}
}

func ToReservaDetalleResponse(r *models.Reserva) ReservaDetalleResponse {
	resp := ReservaDetalleResponse{ReservaResponse: ToReservaResponse(r)}
	if r.Hotel != nil {
		h := ToHotelResponse(r.Hotel)
		resp.Hotel = &h
	}
	if r.Habitacion != nil {
		hab := ToHabitacionResponse(r.Habitacion)
		resp.Habitacion = &hab
	}
	if r.Cliente != nil {
		c := ToClienteResponse(r.Cliente)
		resp.Cliente = &c
	}
	return resp
}
