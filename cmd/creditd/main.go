package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/senior-copycoders/Backend/internal/application/usecase"
	"github.com/senior-copycoders/Backend/internal/domain/service"
	"github.com/senior-copycoders/Backend/internal/infrastructure/config"
	"github.com/senior-copycoders/Backend/internal/infrastructure/messaging"
	"github.com/senior-copycoders/Backend/internal/infrastructure/pdf"
	pgRepo "github.com/senior-copycoders/Backend/internal/infrastructure/persistence/postgres"
	"github.com/senior-copycoders/Backend/internal/presentation/rest"
	"github.com/senior-copycoders/Backend/pkg/auth"
	pkgkafka "github.com/senior-copycoders/Backend/pkg/kafka"
	"github.com/senior-copycoders/Backend/pkg/observability"
	pkgpostgres "github.com/senior-copycoders/Backend/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting credit-service", "http_port", cfg.HTTPPort)

	// Tracing is optional: a missing collector must not keep the service down.
	if cfg.Tracing.Endpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			Insecure:    cfg.Tracing.Insecure,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
		}
	}

	_, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without /metrics", "error", err)
		metricsHandler = nil
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), cfg.MigrationsDir); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	creditRepo := pgRepo.NewCreditRepo(pool)
	userRepo := pgRepo.NewUserRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)
	exporter := pdf.NewScheduleExporter()
	validator := service.NewCreditValidator()

	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     cfg.Auth.JWTSecret,
		Issuer:     cfg.Auth.JWTIssuer,
		Expiration: cfg.Auth.JWTExpiration,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// Wire use cases.
	generateUC := usecase.NewGenerateScheduleUseCase(creditRepo, validator, publisher)
	paymentUC := usecase.NewApplyPaymentUseCase(creditRepo, validator, publisher)
	getScheduleUC := usecase.NewGetScheduleUseCase(creditRepo)
	listCreditsUC := usecase.NewListCreditsUseCase(creditRepo)
	deleteUC := usecase.NewDeleteCreditUseCase(creditRepo, publisher)
	exportUC := usecase.NewExportScheduleUseCase(creditRepo, exporter)
	previewUC := usecase.NewPreviewPaymentUseCase(validator)
	constantsUC := usecase.NewGetCreditConstantsUseCase(validator)
	registerUC := usecase.NewRegisterUseCase(userRepo, jwtService)
	loginUC := usecase.NewLoginUseCase(userRepo, jwtService)

	// HTTP surface.
	authHandler := rest.NewAuthHandler(registerUC, loginUC, logger)
	creditHandler := rest.NewCreditHandler(generateUC, paymentUC, getScheduleUC, listCreditsUC, deleteUC, exportUC, previewUC, constantsUC, logger)
	healthHandler := rest.NewHealthHandler(pool)
	router := rest.NewRouter(authHandler, creditHandler, healthHandler, jwtService, metricsHandler, logger)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("credit-service stopped")
}
