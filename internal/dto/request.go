package dto

import "time"

// FechaLayout is the wire format for all dates (date-only, no time zone).
const FechaLayout = "2006-01-02"

func ParseFecha(s string) (time.Time, error) {
	return time.Parse(FechaLayout, s)
}

func FormatFecha(t time.Time) string {
	return t.Format(FechaLayout)
}

type CreateReservaRequest struct {
	IDHotel          uint   `json:"id_hotel"`
	IDHabitacion     uint   `json:"id_habitacion"`
	FechaIngreso     string `json:"fecha_ingreso"`
	FechaSalida      string `json:"fecha_salida"`
	IDCliente        uint   `json:"id_cliente"`
	CantidadPersonas int    `json:"cantidad_personas"`
}

type BuscarDisponiblesRequest struct {
	FechaIngreso string `json:"fecha_ingreso"`
	FechaSalida  string `json:"fecha_salida"`
	Capacidad    int    `json:"capacidad"`
	IDHotel      uint   `json:"id_hotel"`
}

type CreateHotelRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

type CreateHabitacionRequest struct {
	Numero          int    `json:"numero"`
	HotelID         uint   `json:"hotelId"`
	PosicionX       int    `json:"posicion_x"`
	PosicionY       int    `json:"posicion_y"`
	Piso            string `json:"piso"`
	Capacidad       int    `json:"capacidad"`
	Caracteristicas string `json:"caracteristicas"`
}

type CreateClienteRequest struct {
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}
