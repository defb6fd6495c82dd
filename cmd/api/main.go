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

	_ "github.com/jhoicas/finanzas-api/docs"
	"github.com/jhoicas/finanzas-api/internal/application/analytics"
	"github.com/jhoicas/finanzas-api/internal/application/audit"
	"github.com/jhoicas/finanzas-api/internal/application/auth"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/finanzas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/finanzas-api/internal/interfaces/http"
	"github.com/jhoicas/finanzas-api/pkg/config"
	"github.com/jhoicas/finanzas-api/pkg/logger"
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

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	periodRepo := postgres.NewPeriodRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	categoryRepo := postgres.NewExpenseCategoryRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	balanceRepo := postgres.NewManualBalanceRepository(pool)
	logRepo := postgres.NewActivityLogRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)

	// Casos de uso
	recorder := audit.NewRecorder(logRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, recorder)
	periodUC := usecase.NewPeriodUseCase(periodRepo, recorder)
	txUC := usecase.NewTransactionUseCase(txRepo, periodRepo, recorder)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, categoryRepo, recorder)
	categoryUC := usecase.NewExpenseCategoryUseCase(categoryRepo, recorder)
	methodUC := usecase.NewPaymentMethodUseCase(methodRepo, recorder)
	balanceUC := usecase.NewManualBalanceUseCase(balanceRepo, periodRepo, recorder)
	activityLogUC := usecase.NewActivityLogUseCase(logRepo)

	pdfGenerator := infrapdf.NewSummaryPDFGenerator(cfg.App.Name)
	summaryUC := analytics.NewSummaryUseCase(summaryRepo, balanceRepo, periodRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Finanzas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"app":    cfg.App.Name,
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UserUC:          userUC,
		PeriodUC:        periodUC,
		TransactionUC:   txUC,
		ExpenseUC:       expenseUC,
		ExpenseCatUC:    categoryUC,
		PaymentMethodUC: methodUC,
		ManualBalanceUC: balanceUC,
		ActivityLogUC:   activityLogUC,
		SummaryUC:       summaryUC,
		JWTSecret:       cfg.JWT.Secret,
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
