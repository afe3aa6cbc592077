package payment_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"astroportal/internal/api/controllers"
	"astroportal/internal/repositories"
	"astroportal/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, providePaymentService, controllers.NewPaymentController)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func providePaymentService(txnRepo repositories.TransactionRepository) (services.PaymentServiceInterface, error) {
	return services.NewPaymentService(txnRepo, services.PayOSConfig{
		ClientID:     os.Getenv("PAYOS_CLIENT_ID"),
		ApiKey:       os.Getenv("PAYOS_API_KEY"),
		ChecksumKey:  os.Getenv("PAYOS_CHECKSUM_KEY"),
		ReturnURL:    os.Getenv("PAYOS_RETURN_URL"),
		CancelURL:    os.Getenv("PAYOS_CANCEL_URL"),
		ProviderName: "payos",
	})
}
