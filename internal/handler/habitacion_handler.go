package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ljbenitez/hotel-reservas/internal/dto"
	"github.com/ljbenitez/hotel-reservas/internal/models"
	"github.com/ljbenitez/hotel-reservas/internal/repository"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HabitacionHandler struct {
	repo repository.HabitacionRepository
}

func NewHabitacionHandler(repo repository.HabitacionRepository) *HabitacionHandler {
	return &HabitacionHandler{repo: repo}
}

func (h *HabitacionHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/habitacion")
	g.POST("", h.Create)
	g.GET("", h.FindAll)
	g.GET("/:id", h.FindOne)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *HabitacionHandler) Create(c echo.Context) error {
	var req dto.CreateHabitacionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	switch {
	case req.Numero == 0:
		return echo.NewHTTPError(http.StatusBadRequest, "El campo numero no puede estar vacío!")
	case req.HotelID == 0:
		return echo.NewHTTPError(http.StatusBadRequest, "El campo hotelId no puede estar vacío!")
	case req.Piso == "":
		return echo.NewHTTPError(http.StatusBadRequest, "El campo piso no puede estar vacío!")
	case req.Capacidad < 1:
		return echo.NewHTTPError(http.StatusBadRequest, "El campo capacidad debe ser al menos 1!")
	}

	habitacion := &models.Habitacion{
		Numero:          req.Numero,
		HotelID:         req.HotelID,
		PosicionX:       req.PosicionX,
		PosicionY:       req.PosicionY,
		Piso:            req.Piso,
		Capacidad:       req.Capacidad,
		Caracteristicas: req.Caracteristicas,
	}
	if err := h.repo.Create(c.Request().Context(), habitacion); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Ha ocurrido un error al crear la habitacion.")
	}
	return c.JSON(http.StatusCreated, dto.ToHabitacionResponse(habitacion))
}

func (h *HabitacionHandler) FindOne(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid habitacion id")
	}

	habitacion, err := h.repo.FindByID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("No se puede encontrar la habitacion con id=%d.", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error al obtener la habitacion con id=%d", id))
	}
	return c.JSON(http.StatusOK, dto.ToHabitacionResponse(habitacion))
}

func (h *HabitacionHandler) FindAll(c echo.Context) error {
	var hotelID *uint
	if s := c.QueryParam("hotelId"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid hotelId")
		}
		v := uint(id)
		hotelID = &v
	}

	habitaciones, err := h.repo.FindAll(c.Request().Context(), hotelID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Ocurrio un error al obtener las habitaciones.")
	}

	resp := make([]dto.HabitacionResponse, len(habitaciones))
	for i := range habitaciones {
		resp[i] = dto.ToHabitacionResponse(&habitaciones[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *HabitacionHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid habitacion id")
	}

	var req dto.CreateHabitacionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	num, err := h.repo.Update(c.Request().Context(), uint(id), &models.Habitacion{
		Numero:          req.Numero,
		HotelID:         req.HotelID,
		PosicionX:       req.PosicionX,
		PosicionY:       req.PosicionY,
		Piso:            req.Piso,
		Capacidad:       req.Capacidad,
		Caracteristicas: req.Caracteristicas,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error al actualizar la habitacion con id=%d", id))
	}
	if num != 1 {
		return c.JSON(http.StatusOK, dto.MessageResponse{
			Message: fmt.Sprintf("No se puede actualizar la habitacion con id=%d. Tal vez no fue encontrada o req.body esta vacio!", id),
		})
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Habitacion actualizada correctamente."})
}

func (h *HabitacionHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid habitacion id")
	}

	num, err := h.repo.Delete(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("No se puede eliminar la habitacion con id=%d", id))
	}
	if num != 1 {
		return c.JSON(http.StatusOK, dto.MessageResponse{
			Message: fmt.Sprintf("No se puede eliminar la habitacion con id=%d. Tal vez no fue encontrada!", id),
		})
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Habitacion eliminada correctamente!"})
}
