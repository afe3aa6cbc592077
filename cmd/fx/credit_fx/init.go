package credit_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"astroportal/internal/api/controllers"
	"astroportal/internal/repositories"
	"astroportal/internal/services"
)

var Module = fx.Provide(
	provideCreditRepo, provideCreditService, controllers.NewCreditController)

func provideCreditRepo(db *gorm.DB) repositories.CreditRepository {
	return repositories.NewCreditRepository(db)
}

func provideCreditService(creditRepo repositories.CreditRepository) services.CreditServiceInterface {
	return services.NewCreditService(creditRepo)
}
