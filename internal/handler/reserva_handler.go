package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ljbenitez/hotel-reservas/internal/dto"
	"github.com/ljbenitez/hotel-reservas/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservaHandler struct {
	svc service.ReservaService
}

func NewReservaHandler(svc service.ReservaService) *ReservaHandler {
	return &ReservaHandler{svc: svc}
}

func (h *ReservaHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/reserva")
	g.POST("", h.CreateReserva)
	g.POST("/buscarDisponibles", h.BuscarDisponibles)
	g.GET("/listReservas", h.ListReservas)
}

func (h *ReservaHandler) CreateReserva(c echo.Context) error {
	var req dto.CreateReservaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ingreso, err := parseFecha(req.FechaIngreso, "fecha_ingreso")
	if err != nil {
		return err
	}
	salida, err := parseFecha(req.FechaSalida, "fecha_salida")
	if err != nil {
		return err
	}

	reserva, err := h.svc.CreateReserva(c.Request().Context(), service.CreateReservaInput{
		IDHotel:          req.IDHotel,
		IDHabitacion:     req.IDHabitacion,
		FechaIngreso:     ingreso,
		FechaSalida:      salida,
		IDCliente:        req.IDCliente,
		CantidadPersonas: req.CantidadPersonas,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToReservaResponse(reserva))
}

func (h *ReservaHandler) BuscarDisponibles(c echo.Context) error {
	var req dto.BuscarDisponiblesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ingreso, err := parseFecha(req.FechaIngreso, "fecha_ingreso")
	if err != nil {
		return err
	}
	salida, err := parseFecha(req.FechaSalida, "fecha_salida")
	if err != nil {
		return err
	}

	in := service.BuscarDisponiblesInput{
		FechaIngreso: ingreso,
		FechaSalida:  salida,
		Capacidad:    req.Capacidad,
	}
	if req.IDHotel != 0 {
		in.IDHotel = &req.IDHotel
	}

	habitaciones, err := h.svc.BuscarDisponibles(c.Request().Context(), in)
	if err != nil {
		return mapServiceError(err)
	}
	if len(habitaciones) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No hay habitaciones disponibles para las fechas seleccionadas.")
	}

	resp := make([]dto.HabitacionResponse, len(habitaciones))
	for i := range habitaciones {
		resp[i] = dto.ToHabitacionResponse(&habitaciones[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservaHandler) ListReservas(c echo.Context) error {
	in := service.ListReservasInput{}

	if s := c.QueryParam("id_hotel"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "El campo id_hotel no es válido!")
		}
		in.IDHotel = uint(id)
	}

	ingreso, err := parseFecha(c.QueryParam("fecha_ingreso"), "fecha_ingreso")
	if err != nil {
		return err
	}
	in.FechaIngreso = ingreso

	if s := c.QueryParam("fecha_salida"); s != "" {
		salida, err := parseFecha(s, "fecha_salida")
		if err != nil {
			return err
		}
		in.FechaSalida = &salida
	}
	if s := c.QueryParam("id_cliente"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "El campo id_cliente no es válido!")
		}
		idCliente := uint(id)
		in.IDCliente = &idCliente
	}

	reservas, err := h.svc.ListReservas(c.Request().Context(), in)
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]dto.ReservaDetalleResponse, len(reservas))
	for i := range reservas {
		resp[i] = dto.ToReservaDetalleResponse(&reservas[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// parseFecha turns a wire date into a time. An empty value stays zero so
// the service reports the missing field; a malformed one is a 400 here.
func parseFecha(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := dto.ParseFecha(value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("El campo %s no es una fecha válida (YYYY-MM-DD)!", field))
	}
	return t, nil
}

func mapServiceError(err error) error {
	var missing *service.MissingFieldError
	switch {
	case errors.As(err, &missing),
		errors.Is(err, service.ErrRangoInvalido),
		errors.Is(err, service.ErrCapacidadExcedida),
		errors.Is(err, service.ErrHabitacionOcupada):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrHabitacionNotFound),
		errors.Is(err, service.ErrClienteNotFound),
		errors.Is(err, service.ErrSinReservas):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
