package repository

import (
	"context"

	"github.com/ljbenitez/hotel-reservas/internal/models"
	"gorm.io/gorm"
)

type HabitacionRepository interface {
	Create(ctx context.Context, habitacion *models.Habitacion) error
	FindByID(ctx context.Context, id uint) (*models.Habitacion, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Habitacion, error)
	// FindAll returns every room, scoped to a hotel when hotelID is non-nil,
	// ordered by id for deterministic results.
	FindAll(ctx context.Context, hotelID *uint) ([]models.Habitacion, error)
	Update(ctx context.Context, id uint, values *models.Habitacion) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type habitacionRepository struct {
	db *gorm.DB
}

func NewHabitacionRepository(db *gorm.DB) HabitacionRepository {
	return &habitacionRepository{db: db}
}

func (r *habitacionRepository) Create(ctx context.Context, habitacion *models.Habitacion) error {
	return r.db.WithContext(ctx).Create(habitacion).Error
}

func (r *habitacionRepository) FindByID(ctx context.Context, id uint) (*models.Habitacion, error) {
	var habitacion models.Habitacion
	if err := r.db.WithContext(ctx).First(&habitacion, id).Error; err != nil {
		return nil, err
	}
	return &habitacion, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction, serializing concurrent admissions for the same room.
func (r *habitacionRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Habitacion, error) {
	var habitacion models.Habitacion
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&habitacion, id).Error; err != nil {
		return nil, err
	}
	return &habitacion, nil
}

func (r *habitacionRepository) FindAll(ctx context.Context, hotelID *uint) ([]models.Habitacion, error) {
	q := r.db.WithContext(ctx)
	if hotelID != nil {
		q = q.Where("hotel_id = ?", *hotelID)
	}
	var habitaciones []models.Habitacion
	if err := q.Order("id ASC").Find(&habitaciones).Error; err != nil {
		return nil, err
	}
	return habitaciones, nil
}

func (r *habitacionRepository) Update(ctx context.Context, id uint, values *models.Habitacion) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Habitacion{}).
		Where("id = ?", id).
		Updates(values)
	return result.RowsAffected, result.Error
}

func (r *habitacionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Habitacion{}, id)
	return result.RowsAffected, result.Error
}
