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

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/localdb"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/password"
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

	kv, err := localdb.NewFileKV(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	store, err := localdb.NewStore(kv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar dataset")
	}

	userRepo := localdb.NewUserRepository(store)
	itemRepo := localdb.NewItemRepository(store)
	movementRepo := localdb.NewMovementRepository(store)
	supplierRepo := localdb.NewSupplierRepository(store)
	orderRepo := localdb.NewPurchaseOrderRepository(store)
	auditRepo := localdb.NewAuditRepository(store)

	recorder := audit.NewRecorder(auditRepo, log)
	bcrypt := password.Bcrypt{}

	authUC := auth.NewAuthUseCase(userRepo, bcrypt, bcrypt, recorder, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, bcrypt, recorder)
	itemUC := usecase.NewItemUseCase(itemRepo, recorder)
	registerMovementUC := inventory.NewRegisterMovementUseCase(store, recorder)
	movementUC := usecase.NewMovementUseCase(movementRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, recorder)
	orderUC := usecase.NewPurchaseOrderUseCase(orderRepo, supplierRepo, itemRepo, recorder)
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	reportUC := usecase.NewReportUseCase(itemRepo, movementRepo, pdfGenerator)
	auditUC := usecase.NewAuditUseCase(auditRepo)

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
		Title:    "Almacén Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		ItemUC:           itemUC,
		RegisterMovement: registerMovementUC,
		MovementUC:       movementUC,
		SupplierUC:       supplierUC,
		PurchaseOrderUC:  orderUC,
		ReportUC:         reportUC,
		AuditUC:          auditUC,
		JWTSecret:        cfg.JWT.Secret,
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
