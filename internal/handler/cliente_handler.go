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

type ClienteHandler struct {
	repo repository.ClienteRepository
}

func NewClienteHandler(repo repository.ClienteRepository) *ClienteHandler {
	return &ClienteHandler{repo: repo}
}

func (h *ClienteHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/cliente")
	g.POST("", h.Create)
	g.GET("", h.FindAll)
	g.GET("/cedula/:cedula", h.FindByCedula)
	g.GET("/:id", h.FindOne)
}

func (h *ClienteHandler) Create(c echo.Context) error {
	var req dto.CreateClienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	switch {
	case req.Cedula == "":
		return echo.NewHTTPError(http.StatusBadRequest, "El campo cedula no puede estar vacío!")
	case req.Nombre == "":
		return echo.NewHTTPError(http.StatusBadRequest, "El campo nombre no puede estar vacío!")
	case req.Apellido == "":
		return echo.NewHTTPError(http.StatusBadRequest, "El campo apellido no puede estar vacío!")
	}

	cliente := &models.Cliente{Cedula: req.Cedula, Nombre: req.Nombre, Apellido: req.Apellido}
	if err := h.repo.Create(c.Request().Context(), cliente); err != nil {
		// The unique index on cedula rejects duplicates here.
		return echo.NewHTTPError(http.StatusInternalServerError, "Ha ocurrido un error al crear el cliente.")
	}
	return c.JSON(http.StatusCreated, dto.ToClienteResponse(cliente))
}

func (h *ClienteHandler) FindOne(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cliente id")
	}

	cliente, err := h.repo.FindByID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("No se encontró el cliente con id=%d", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error al obtener el cliente con id=%d", id))
	}
	return c.JSON(http.StatusOK, dto.ToClienteResponse(cliente))
}

func (h *ClienteHandler) FindByCedula(c echo.Context) error {
	cedula := c.Param("cedula")

	cliente, err := h.repo.FindByCedula(c.Request().Context(), cedula)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("No se encontró el cliente con cedula=%s", cedula))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error al obtener el cliente con cedula=%s", cedula))
	}
	return c.JSON(http.StatusOK, dto.ToClienteResponse(cliente))
}

func (h *ClienteHandler) FindAll(c echo.Context) error {
	clientes, err := h.repo.FindAll(c.Request().Context(), c.QueryParam("nombre"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Ocurrio un error al obtener los clientes.")
	}

	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = dto.ToClienteResponse(&clientes[i])
	}
	return c.JSON(http.StatusOK, resp)
}
