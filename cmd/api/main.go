package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/auth"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/usecase"
	"github.com/sagarkwankhade/CRM-Version-One/internal/infrastructure/postgres"
	httpRouter "github.com/sagarkwankhade/CRM-Version-One/internal/interfaces/http"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/config"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/jwt"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Secreto de desarrollo si no hay JWT_SECRET. Nunca en producción.
	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		if cfg.App.Env == "production" {
			log.Fatal().Msg("JWT_SECRET es obligatorio en producción")
		}
		jwtSecret = jwt.DevSecret
		log.Warn().Msg("JWT_SECRET no definido, usando secreto de desarrollo")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: jwtSecret,
		Issuer: cfg.JWT.Issuer,
	})
	accountUC := usecase.NewAccountUseCase(userRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, userRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo)
	notifUC := usecase.NewNotificationUseCase(notifRepo, userRepo)
	dashboardUC := usecase.NewDashboardUseCase(userRepo, leadRepo, notifRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(fiber.Map{"status": "unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		AccountUC:      accountUC,
		TaskUC:         taskUC,
		LeadUC:         leadUC,
		NotificationUC: notifUC,
		DashboardUC:    dashboardUC,
		JWTSecret:      jwtSecret,
		Accounts:       userRepo,
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
