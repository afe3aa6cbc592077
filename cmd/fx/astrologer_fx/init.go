package astrologer_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"astroportal/internal/api/controllers"
	"astroportal/internal/repositories"
	"astroportal/internal/services"
)

var Module = fx.Provide(
	provideAstrologerRepo, provideAstrologerService, controllers.NewAstrologerController)

func provideAstrologerRepo(db *gorm.DB) repositories.AstrologerRepository {
	return repositories.NewAstrologerRepository(db)
}

func provideAstrologerService(astrologerRepo repositories.AstrologerRepository) services.AstrologerServiceInterface {
	return services.NewAstrologerService(astrologerRepo)
}
