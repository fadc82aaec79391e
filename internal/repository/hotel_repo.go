package repository

import (
	"context"

	"github.com/ljbenitez/hotel-reservas/internal/models"
	"gorm.io/gorm"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	FindByID(ctx context.Context, id uint) (*models.Hotel, error)
	// FindAll optionally filters by a case-insensitive nombre substring.
	FindAll(ctx context.Context, nombre string) ([]models.Hotel, error)
	Update(ctx context.Context, id uint, values *models.Hotel) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) FindByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) FindAll(ctx context.Context, nombre string) ([]models.Hotel, error) {
	q := r.db.WithContext(ctx)
	if nombre != "" {
		q = q.Where("LOWER(nombre) LIKE LOWER(?)", "%"+nombre+"%")
	}
	var hoteles []models.Hotel
	if err := q.Order("id ASC").Find(&hoteles).Error; err != nil {
		return nil, err
	}
	return hoteles, nil
}

func (r *hotelRepository) Update(ctx context.Context, id uint, values *models.Hotel) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Hotel{}).
		Where("id = ?", id).
		Updates(values)
	return result.RowsAffected, result.Error
}

func (r *hotelRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Hotel{}, id)
	return result.RowsAffected, result.Error
}
