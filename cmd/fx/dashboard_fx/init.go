package dashboard_fx

import (
	"go.uber.org/fx"

	"astroportal/internal/api/controllers"
	"astroportal/internal/repositories"
	"astroportal/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, controllers.NewDashboardController)

func provideDashboardService(
	creditRepo repositories.CreditRepository,
	profileRepo repositories.ProfileRepository,
	orderRepo repositories.OrderRepository,
	horoscopeRepo repositories.HoroscopeRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(creditRepo, profileRepo, orderRepo, horoscopeRepo)
}
