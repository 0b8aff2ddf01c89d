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

	"github.com/jhoicas/Fermentario-api/internal/application/inventory"
	"github.com/jhoicas/Fermentario-api/internal/application/production"
	"github.com/jhoicas/Fermentario-api/internal/application/recipe"
	"github.com/jhoicas/Fermentario-api/internal/application/reminder"
	"github.com/jhoicas/Fermentario-api/internal/application/sales"
	infrapdf "github.com/jhoicas/Fermentario-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Fermentario-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Fermentario-api/internal/interfaces/http"
	"github.com/jhoicas/Fermentario-api/pkg/config"
	"github.com/jhoicas/Fermentario-api/pkg/logger"
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

	itemRepo := postgres.NewInventoryItemRepository(pool)
	movRepo := postgres.NewMovementLogRepository(pool)
	batchRepo := postgres.NewProductionBatchRepository(pool)
	recipeRepo := postgres.NewRecipeTemplateRepository(pool)
	reminderRepo := postgres.NewReminderRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	itemUC := inventory.NewItemUseCase(itemRepo, movRepo, log)
	purchaseUC := inventory.NewRecordPurchaseUseCase(txRunner, supplierRepo, log)
	adjustUC := inventory.NewRegisterAdjustmentUseCase(txRunner, log)
	supplierUC := inventory.NewSupplierUseCase(supplierRepo)

	createBatchUC := production.NewCreateBatchUseCase(txRunner, itemRepo, recipeRepo, log)
	completeBatchUC := production.NewCompleteBatchUseCase(txRunner, log)
	failBatchUC := production.NewFailBatchUseCase(txRunner, log)
	productionQueryUC := production.NewQueryUseCase(batchRepo)

	recipeUC := recipe.NewUseCase(recipeRepo, itemRepo, batchRepo, log)
	reminderUC := reminder.NewUseCase(reminderRepo, log)

	createSaleUC := sales.NewCreateSaleUseCase(txRunner, customerRepo, log)
	customerUC := sales.NewCustomerUseCase(customerRepo)

	// PDF: recibo de venta para el cliente final
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := sales.NewReceiptUseCase(saleRepo, customerRepo, itemRepo, receiptGen)

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
		Title:    "Fermentario API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Inventory:  httpRouter.NewInventoryHandler(itemUC, adjustUC),
		Purchases:  httpRouter.NewPurchaseHandler(purchaseUC),
		Production: httpRouter.NewProductionHandler(createBatchUC, completeBatchUC, failBatchUC, productionQueryUC, reminderUC),
		Recipes:    httpRouter.NewRecipeHandler(recipeUC),
		Reminders:  httpRouter.NewReminderHandler(reminderUC),
		Sales:      httpRouter.NewSalesHandler(createSaleUC, receiptUC),
		Suppliers:  httpRouter.NewSupplierHandler(supplierUC),
		Customers:  httpRouter.NewCustomerHandler(customerUC),
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

	log.Info().Msg("servidor detenido")
}
