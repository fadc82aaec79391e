package repository

import (
	"context"
	"time"

	"github.com/ljbenitez/hotel-reservas/internal/models"
	"gorm.io/gorm"
)

// ReservaFilter holds the listReservas criteria. IDHotel and FechaIngreso
// are mandatory exact matches; the optional fields narrow by exact match
// when present.
type ReservaFilter struct {
	IDHotel      uint
	FechaIngreso time.Time
	FechaSalida  *time.Time
	IDCliente    *uint
}

type ReservaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reserva *models.Reserva) error
	// CountOverlapping counts reservations for the room whose half-open
	// interval [fecha_ingreso, fecha_salida) intersects [ingreso, salida).
	CountOverlapping(ctx context.Context, tx *gorm.DB, habitacionID uint, ingreso, salida time.Time) (int64, error)
	// FindOverlapping returns every reservation intersecting the window,
	// across all rooms.
	FindOverlapping(ctx context.Context, ingreso, salida time.Time) ([]models.Reserva, error)
	FindWithDetails(ctx context.Context, filter ReservaFilter) ([]models.Reserva, error)
	GetDB() *gorm.DB
}

type reservaRepository struct {
	db *gorm.DB
}

func NewReservaRepository(db *gorm.DB) ReservaRepository {
	return &reservaRepository{db: db}
}

func (r *reservaRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *reservaRepository) Create(ctx context.Context, tx *gorm.DB, reserva *models.Reserva) error {
	return tx.WithContext(ctx).Create(reserva).Error
}

func (r *reservaRepository) CountOverlapping(ctx context.Context, tx *gorm.DB, habitacionID uint, ingreso, salida time.Time) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Reserva{}).
		Where("id_habitacion = ? AND fecha_ingreso < ? AND fecha_salida > ?", habitacionID, salida, ingreso).
		Count(&count).Error
	return count, err
}

func (r *reservaRepository) FindOverlapping(ctx context.Context, ingreso, salida time.Time) ([]models.Reserva, error) {
	var reservas []models.Reserva
	err := r.db.WithContext(ctx).
		Where("fecha_ingreso < ? AND fecha_salida > ?", salida, ingreso).
		Find(&reservas).Error
	if err != nil {
		return nil, err
	}
	return reservas, nil
}

func (r *reservaRepository) FindWithDetails(ctx context.Context, filter ReservaFilter) ([]models.Reserva, error) {
	q := r.db.WithContext(ctx).
		Joins("JOIN habitaciones ON habitaciones.id = reservas.id_habitacion").
		Where("reservas.id_hotel = ? AND reservas.fecha_ingreso = ?", filter.IDHotel, filter.FechaIngreso)

	if filter.FechaSalida != nil {
		q = q.Where("reservas.fecha_salida = ?", *filter.FechaSalida)
	}
	if filter.IDCliente != nil {
		q = q.Where("reservas.id_cliente = ?", *filter.IDCliente)
	}

	var reservas []models.Reserva
	err := q.
		Preload("Hotel").
		Preload("Habitacion").
		Preload("Cliente").
		Order("reservas.fecha_ingreso ASC, habitaciones.piso ASC, habitaciones.numero ASC").
		Find(&reservas).Error
	if err != nil {
		return nil, err
	}
	return reservas, nil
}
