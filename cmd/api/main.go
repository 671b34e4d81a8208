package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/everflown/logistics-api/internal/application/analytics"
	"github.com/everflown/logistics-api/internal/application/auth"
	"github.com/everflown/logistics-api/internal/application/usecase"
	infrapdf "github.com/everflown/logistics-api/internal/infrastructure/pdf"
	"github.com/everflown/logistics-api/internal/infrastructure/postgres"
	httpRouter "github.com/everflown/logistics-api/internal/interfaces/http"
	"github.com/everflown/logistics-api/pkg/config"
	"github.com/everflown/logistics-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	carrierRepo := postgres.NewCarrierRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	dispatchRepo := postgres.NewDispatchRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	followUpRepo := postgres.NewFollowUpRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	carrierUC := usecase.NewCarrierUseCase(carrierRepo)
	quoteUC := usecase.NewQuoteUseCase(quoteRepo, leadRepo, txRunner)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	dispatchUC := usecase.NewDispatchUseCase(dispatchRepo, orderRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo)
	followUpUC := usecase.NewFollowUpUseCase(followUpRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(orderRepo, quoteRepo, invoiceRepo)

	// PDF: cotizaciones, facturas y rate confirmations
	pdfGenerator := infrapdf.NewMarotoGenerator()
	documentUC := usecase.NewDocumentUseCase(
		quoteRepo, leadRepo, customerRepo,
		invoiceRepo, orderRepo, dispatchRepo, carrierRepo,
		pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EverFlown Logistics API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		LeadUC:      leadUC,
		CustomerUC:  customerUC,
		CarrierUC:   carrierUC,
		QuoteUC:     quoteUC,
		OrderUC:     orderUC,
		DispatchUC:  dispatchUC,
		InvoiceUC:   invoiceUC,
		FollowUpUC:  followUpUC,
		DocumentUC:  documentUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
