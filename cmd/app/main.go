package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"astroportal/cmd/fx/account_fx"
	"astroportal/cmd/fx/astrologer_fx"
	"astroportal/cmd/fx/credit_fx"
	"astroportal/cmd/fx/dashboard_fx"
	"astroportal/cmd/fx/db_fx"
	"astroportal/cmd/fx/generation_fx"
	"astroportal/cmd/fx/mail_fx"
	"astroportal/cmd/fx/memcache_fx"
	"astroportal/cmd/fx/order_fx"
	"astroportal/cmd/fx/payment_fx"
	"astroportal/cmd/fx/profile_fx"
	"astroportal/internal/api/controllers"
	"astroportal/internal/services"
	"astroportal/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// The internal generation endpoints have no other access control;
	// refusing to boot beats silently accepting unauthenticated calls.
	if os.Getenv("WEBHOOK_SECRET") == "" {
		log.Fatal("WEBHOOK_SECRET must be set")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		profile_fx.Module,
		astrologer_fx.Module,
		credit_fx.Module,
		order_fx.Module,
		generation_fx.Module,
		payment_fx.Module,
		dashboard_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartWorker),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		// Drain in-flight requests before the worker hooks stop; this
		// hook runs first on shutdown, so no handler can reach a
		// closed queue.
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func StartWorker(lc fx.Lifecycle, worker *services.GenerationWorker) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			worker.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			worker.Stop()
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	astrologerController *controllers.AstrologerController,
	creditController *controllers.CreditController,
	orderController *controllers.OrderController,
	horoscopeController *controllers.HoroscopeController,
	generationController *controllers.GenerationController,
	paymentController *controllers.PaymentController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		profileController,
		astrologerController,
		creditController,
		orderController,
		horoscopeController,
		generationController,
		paymentController,
		dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	astrologerController *controllers.AstrologerController,
	creditController *controllers.CreditController,
	orderController *controllers.OrderController,
	horoscopeController *controllers.HoroscopeController,
	generationController *controllers.GenerationController,
	paymentController *controllers.PaymentController,
	dashboardController *controllers.DashboardController) {

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	astrologers := r.Group("/astrologers")
	astrologers.GET("", astrologerController.ListAstrologers)
	astrologers.GET("/:astrologerId", astrologerController.GetAstrologerById)
	astrologers.POST("/:astrologerId/reviews", middleware.JWTAuthMiddleware(), astrologerController.CreateReview)

	payments := r.Group("/payments")
	payments.GET("/packs", paymentController.ListPacks)
	payments.POST("/checkout", middleware.JWTAuthMiddleware(), paymentController.CreateCheckout)
	payments.POST("/webhook", paymentController.HandleWebhook)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())
	{
		authed.GET("/profile", profileController.GetProfile)
		authed.PUT("/profile", profileController.UpdateProfile)

		authed.GET("/credits/balance", creditController.GetBalance)
		authed.GET("/credits/questions", creditController.ListQuestions)
		authed.POST("/credits/questions/answer", creditController.AnswerQuestion)

		authed.POST("/orders", orderController.CreateOrder)
		authed.GET("/orders", orderController.ListOrders)
		authed.GET("/orders/history", orderController.GetHistory)
		authed.GET("/orders/:orderId", orderController.GetOrderById)
		authed.POST("/orders/:orderId/cancel", orderController.CancelOrder)

		authed.GET("/horoscopes", horoscopeController.ListHoroscopes)
		authed.GET("/horoscopes/:horoscopeId", horoscopeController.GetHoroscopeById)
		authed.GET("/horoscopes/by-order/:orderId", horoscopeController.GetHoroscopeByOrderId)

		authed.GET("/dashboard", dashboardController.GetDashboard)
	}

	internal := r.Group("/internal")
	internal.Use(middleware.WebhookSecretMiddleware(os.Getenv("WEBHOOK_SECRET")))
	internal.POST("/generation/trigger", generationController.TriggerGeneration)
	internal.POST("/generation/process", generationController.ProcessGeneration)
}
