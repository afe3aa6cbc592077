package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"astroportal/internal/api/controllers"
	"astroportal/internal/repositories"
	"astroportal/internal/services"
	mem "astroportal/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, controllers.NewAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
	resetCodes mem.ResetCodeStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, mailService, resetCodes)
}
