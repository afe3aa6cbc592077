package services

import (
	"context"

	"github.com/google/uuid"

	"astroportal/internal/models/response_models"
	"astroportal/internal/repositories"
	"astroportal/pkg/utils"
)

type HoroscopeServiceInterface interface {
	GetHoroscopeById(ctx context.Context, accountID, horoscopeID uuid.UUID) (*response_models.HoroscopeResponse, error)
	GetHoroscopeByOrderId(ctx context.Context, accountID, orderID uuid.UUID) (*response_models.HoroscopeResponse, error)
	ListHoroscopes(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.HoroscopeResponse, error)
}

type HoroscopeService struct {
	horoscopeRepo repositories.HoroscopeRepository
}

func NewHoroscopeService(horoscopeRepo repositories.HoroscopeRepository) HoroscopeServiceInterface {
	return &HoroscopeService{horoscopeRepo: horoscopeRepo}
}

func (h *HoroscopeService) GetHoroscopeById(ctx context.Context, accountID, horoscopeID uuid.UUID) (*response_models.HoroscopeResponse, error) {
	horoscope, err := h.horoscopeRepo.FindById(ctx, horoscopeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if horoscope == nil || horoscope.AccountID != accountID {
		return nil, utils.ErrHoroscopeNotFound
	}
	resp := toHoroscopeResponse(horoscope)
	return &resp, nil
}

func (h *HoroscopeService) GetHoroscopeByOrderId(ctx context.Context, accountID, orderID uuid.UUID) (*response_models.HoroscopeResponse, error) {
	horoscope, err := h.horoscopeRepo.FindByOrderId(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if horoscope == nil || horoscope.AccountID != accountID {
		return nil, utils.ErrHoroscopeNotFound
	}
	resp := toHoroscopeResponse(horoscope)
	return &resp, nil
}

func (h *HoroscopeService) ListHoroscopes(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.HoroscopeResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	horoscopes, err := h.horoscopeRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.HoroscopeResponse, 0, len(horoscopes))
	for i := range horoscopes {
		result = append(result, toHoroscopeResponse(&horoscopes[i]))
	}
	return result, nil
}
