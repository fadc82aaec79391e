package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ljbenitez/hotel-reservas/internal/dto"
	"github.com/ljbenitez/hotel-reservas/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type mockClienteRepo struct {
	createFn       func(ctx context.Context, cliente *models.Cliente) error
	findByIDFn     func(ctx context.Context, id uint) (*models.Cliente, error)
	findByCedulaFn func(ctx context.Context, cedula string) (*models.Cliente, error)
	findAllFn      func(ctx context.Context, nombre string) ([]models.Cliente, error)
}

func (m *mockClienteRepo) Create(ctx context.Context, cliente *models.Cliente) error {
	return m.createFn(ctx, cliente)
}
func (m *mockClienteRepo) FindByID(ctx context.Context, id uint) (*models.Cliente, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockClienteRepo) FindByCedula(ctx context.Context, cedula string) (*models.Cliente, error) {
	return m.findByCedulaFn(ctx, cedula)
}
func (m *mockClienteRepo) FindAll(ctx context.Context, nombre string) ([]models.Cliente, error) {
	return m.findAllFn(ctx, nombre)
}

func TestCreateCliente_Handler_Success(t *testing.T) {
	repo := &mockClienteRepo{
		createFn: func(ctx context.Context, cliente *models.Cliente) error {
			cliente.ID = 5
			return nil
		},
	}

	body := `{"cedula":"1234567","nombre":"Juan","apellido":"Benítez"}`
	c, rec := newReservaContext(http.MethodPost, "/api/cliente", body)

	err := NewClienteHandler(repo).Create(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.ClienteResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(5), resp.ID)
	assert.Equal(t, "1234567", resp.Cedula)
}

func TestCreateCliente_Handler_CampoFaltante(t *testing.T) {
	body := `{"nombre":"Juan","apellido":"Benítez"}`
	c, _ := newReservaContext(http.MethodPost, "/api/cliente", body)

	err := NewClienteHandler(&mockClienteRepo{}).Create(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Contains(t, he.Message, "cedula")
}

func TestFindOneCliente_Handler_NotFound(t *testing.T) {
	repo := &mockClienteRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Cliente, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	c, _ := newReservaContext(http.MethodGet, "/api/cliente/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := NewClienteHandler(repo).FindOne(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestFindClienteByCedula_Handler_Success(t *testing.T) {
	repo := &mockClienteRepo{
		findByCedulaFn: func(ctx context.Context, cedula string) (*models.Cliente, error) {
			return &models.Cliente{ID: 2, Cedula: cedula, Nombre: "Ana", Apellido: "Rojas"}, nil
		},
	}

	c, rec := newReservaContext(http.MethodGet, "/api/cliente/cedula/7654321", "")
	c.SetParamNames("cedula")
	c.SetParamValues("7654321")

	err := NewClienteHandler(repo).FindByCedula(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ClienteResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "7654321", resp.Cedula)
	assert.Equal(t, "Ana", resp.Nombre)
}
