package repository

import (
	"context"

	"github.com/ljbenitez/hotel-reservas/internal/models"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, cliente *models.Cliente) error
	FindByID(ctx context.Context, id uint) (*models.Cliente, error)
	FindByCedula(ctx context.Context, cedula string) (*models.Cliente, error)
	FindAll(ctx context.Context, nombre string) ([]models.Cliente, error)
}

type clienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Create(ctx context.Context, cliente *models.Cliente) error {
	return r.db.WithContext(ctx).Create(cliente).Error
}

func (r *clienteRepository) FindByID(ctx context.Context, id uint) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := r.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *clienteRepository) FindByCedula(ctx context.Context, cedula string) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := r.db.WithContext(ctx).Where("cedula = ?", cedula).First(&cliente).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *clienteRepository) FindAll(ctx context.Context, nombre string) ([]models.Cliente, error) {
	q := r.db.WithContext(ctx)
	if nombre != "" {
		q = q.Where("LOWER(nombre) LIKE LOWER(?)", "%"+nombre+"%")
	}
	var clientes []models.Cliente
	if err := q.Order("id ASC").Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}
