package services

import (
	"context"

	"github.com/google/uuid"

	"astroportal/internal/models/response_models"
	"astroportal/internal/repositories"
	"astroportal/pkg/utils"
)

const dashboardRecentCount = 5

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardResponse, error)
}

type DashboardService struct {
	creditRepo    repositories.CreditRepository
	profileRepo   repositories.ProfileRepository
	orderRepo     repositories.OrderRepository
	horoscopeRepo repositories.HoroscopeRepository
}

func NewDashboardService(
	creditRepo repositories.CreditRepository,
	profileRepo repositories.ProfileRepository,
	orderRepo repositories.OrderRepository,
	horoscopeRepo repositories.HoroscopeRepository,
) DashboardServiceInterface {
	return &DashboardService{
		creditRepo:    creditRepo,
		profileRepo:   profileRepo,
		orderRepo:     orderRepo,
		horoscopeRepo: horoscopeRepo,
	}
}

func (d *DashboardService) GetDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardResponse, error) {
	credits, err := d.creditRepo.GetBalance(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.DashboardResponse{
		Credits:          credits,
		RecentOrders:     []response_models.OrderResponse{},
		RecentHoroscopes: []response_models.HoroscopeResponse{},
	}

	profile, err := d.profileRepo.FindByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile != nil {
		resp.CompletionPercent = CompletionPercent(profile)
		resp.ZodiacSign = profile.ZodiacSign
	}

	orders, err := d.orderRepo.ListByAccount(ctx, accountID, 1, dashboardRecentCount)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	for i := range orders {
		resp.RecentOrders = append(resp.RecentOrders, toOrderResponse(&orders[i]))
	}

	horoscopes, err := d.horoscopeRepo.ListByAccount(ctx, accountID, 1, dashboardRecentCount)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	for i := range horoscopes {
		resp.RecentHoroscopes = append(resp.RecentHoroscopes, toHoroscopeResponse(&horoscopes[i]))
	}

	return resp, nil
}
