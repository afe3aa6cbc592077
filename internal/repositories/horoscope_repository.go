package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"astroportal/internal/models/db_models"
)

type HoroscopeRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Horoscope, error)
	FindByOrderId(ctx context.Context, orderID uuid.UUID) (*db_models.Horoscope, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Horoscope, error)
}

type horoscopeRepository struct {
	db *gorm.DB
}

func NewHoroscopeRepository(db *gorm.DB) HoroscopeRepository {
	return &horoscopeRepository{db: db}
}

func (h *horoscopeRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Horoscope, error) {
	var horoscope db_models.Horoscope
	err := h.db.WithContext(ctx).
		Preload("Astrologer").
		First(&horoscope, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &horoscope, nil
}

func (h *horoscopeRepository) FindByOrderId(ctx context.Context, orderID uuid.UUID) (*db_models.Horoscope, error) {
	var horoscope db_models.Horoscope
	err := h.db.WithContext(ctx).
		Preload("Astrologer").
		First(&horoscope, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &horoscope, nil
}

func (h *horoscopeRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Horoscope, error) {
	var horoscopes []db_models.Horoscope
	err := h.db.WithContext(ctx).
		Preload("Astrologer").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&horoscopes).Error
	return horoscopes, err
}
