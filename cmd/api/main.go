package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Planificador-api/internal/application/auth"
	"github.com/jhoicas/Planificador-api/internal/application/importer"
	"github.com/jhoicas/Planificador-api/internal/application/planning"
	"github.com/jhoicas/Planificador-api/internal/application/state"
	"github.com/jhoicas/Planificador-api/internal/application/usecase"
	"github.com/jhoicas/Planificador-api/internal/domain/repository"
	"github.com/jhoicas/Planificador-api/internal/infrastructure/excel"
	"github.com/jhoicas/Planificador-api/internal/infrastructure/filestore"
	"github.com/jhoicas/Planificador-api/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/Planificador-api/internal/interfaces/http"
	"github.com/jhoicas/Planificador-api/pkg/config"
	"github.com/jhoicas/Planificador-api/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	// Superficie de persistencia: cuatro ranuras clave-valor según el driver.
	var (
		storeRepo    repository.StoreRepository
		skuRepo      repository.SKURepository
		weekRepo     repository.WeekRepository
		planningRepo repository.PlanningRepository
	)
	switch cfg.Storage.Driver {
	case "redis":
		rdb, err := redisstore.NewClient(redisstore.Config{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		storeRepo = redisstore.NewStoreRepository(rdb)
		skuRepo = redisstore.NewSKURepository(rdb)
		weekRepo = redisstore.NewWeekRepository(rdb)
		planningRepo = redisstore.NewPlanningRepository(rdb)
	default:
		storeRepo = filestore.NewStoreRepository(cfg.Storage.DataDir)
		skuRepo = filestore.NewSKURepository(cfg.Storage.DataDir)
		weekRepo = filestore.NewWeekRepository(cfg.Storage.DataDir)
		planningRepo = filestore.NewPlanningRepository(cfg.Storage.DataDir)
	}

	// Contenedor de estado: única fuente canónica del proceso, sembrada desde
	// los últimos snapshots guardados.
	container := state.New(storeRepo, skuRepo, weekRepo, planningRepo)
	if err := container.LoadFromStorage(); err != nil {
		log.Fatal().Err(err).Msg("sembrar estado desde persistencia")
	}
	snap := container.Snapshot()
	log.Info().
		Int("stores", len(snap.Stores)).
		Int("skus", len(snap.SKUs)).
		Int("weeks", len(snap.Weeks)).
		Int("facts", len(snap.Facts)).
		Msg("estado sembrado")

	importUC := importer.NewUseCase(excel.NewParser(), container, log)
	matrixUC := planning.NewMatrixUseCase(container, cfg.Planning.MaxRows)
	chartUC := planning.NewChartUseCase(container)
	dataUC := usecase.NewPlanningDataUseCase(container)
	storeUC := usecase.NewStoreUseCase(container)
	skuUC := usecase.NewSKUUseCase(container)
	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    20 * 1024 * 1024, // libros de planificación subidos
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ImportUC:  importUC,
		MatrixUC:  matrixUC,
		ChartUC:   chartUC,
		DataUC:    dataUC,
		StoreUC:   storeUC,
		SKUUC:     skuUC,
		JWTSecret: cfg.JWT.Secret,
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
