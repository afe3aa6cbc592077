package order_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"astroportal/internal/api/controllers"
	"astroportal/internal/repositories"
	"astroportal/internal/services"
	"astroportal/pkg/queue"
)

var Module = fx.Provide(
	provideOrderRepo,
	provideHoroscopeRepo,
	provideOrderService,
	provideHoroscopeService,
	controllers.NewOrderController,
	controllers.NewHoroscopeController)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideHoroscopeRepo(db *gorm.DB) repositories.HoroscopeRepository {
	return repositories.NewHoroscopeRepository(db)
}

func provideOrderService(
	orderRepo repositories.OrderRepository,
	horoscopeRepo repositories.HoroscopeRepository,
	astrologerRepo repositories.AstrologerRepository,
	profileRepo repositories.ProfileRepository,
	genQueue queue.GenerationQueue,
) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, horoscopeRepo, astrologerRepo, profileRepo, genQueue)
}

func provideHoroscopeService(horoscopeRepo repositories.HoroscopeRepository) services.HoroscopeServiceInterface {
	return services.NewHoroscopeService(horoscopeRepo)
}
