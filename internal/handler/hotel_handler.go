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

type HotelHandler struct {
	repo repository.HotelRepository
}

func NewHotelHandler(repo repository.HotelRepository) *HotelHandler {
	return &HotelHandler{repo: repo}
}

func (h *HotelHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/hotel")
	g.POST("", h.Create)
	g.GET("", h.FindAll)
	g.GET("/:id", h.FindOne)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *HotelHandler) Create(c echo.Context) error {
	var req dto.CreateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Nombre == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "El campo nombre no puede estar vacío!")
	}
	if req.Direccion == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "El campo direccion no puede estar vacío!")
	}

	hotel := &models.Hotel{Nombre: req.Nombre, Direccion: req.Direccion}
	if err := h.repo.Create(c.Request().Context(), hotel); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Ha ocurrido un error al crear el hotel.")
	}
	return c.JSON(http.StatusCreated, dto.ToHotelResponse(hotel))
}

func (h *HotelHandler) FindOne(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}

	hotel, err := h.repo.FindByID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("No se encontro el hotel con id=%d", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error al obtener el hotel con id=%d", id))
	}
	return c.JSON(http.StatusOK, dto.ToHotelResponse(hotel))
}

func (h *HotelHandler) FindAll(c echo.Context) error {
	hoteles, err := h.repo.FindAll(c.Request().Context(), c.QueryParam("nombre"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Ocurrio un error al obtener los hoteles.")
	}

	resp := make([]dto.HotelResponse, len(hoteles))
	for i := range hoteles {
		resp[i] = dto.ToHotelResponse(&hoteles[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *HotelHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}

	var req dto.CreateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	num, err := h.repo.Update(c.Request().Context(), uint(id), &models.Hotel{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error al actualizar el hotel con id=%d", id))
	}
	if num != 1 {
		return c.JSON(http.StatusOK, dto.MessageResponse{
			Message: fmt.Sprintf("No se puede actualizar el hotel con id=%d. Quizas no existe o el body esta vacio!", id),
		})
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "El hotel fue actualizado exitosamente."})
}

func (h *HotelHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hotel id")
	}

	num, err := h.repo.Delete(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("No se puede eliminar el hotel con id=%d", id))
	}
	if num != 1 {
		return c.JSON(http.StatusOK, dto.MessageResponse{
			Message: fmt.Sprintf("No se puede eliminar el hotel con id=%d. Quizas no existe!", id),
		})
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "El hotel fue eliminado exitosamente!"})
}
