package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"eventfinder/docs"
	"eventfinder/internal/config"
	"eventfinder/internal/database"
	"eventfinder/internal/database/migration"
	handlers "eventfinder/internal/http/handler"
	"eventfinder/internal/http/middleware"
	"eventfinder/internal/logger"
	"eventfinder/internal/mail"
	"eventfinder/internal/metrics"
	"eventfinder/internal/otel"
	"eventfinder/internal/repository/postgres"
	"eventfinder/internal/service"
	"eventfinder/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Event Finder API
// @version 1.0
// @description Contact form, outbound email and favorite events backend.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.ServiceName, cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) error {
	shutdownTracing, err := otel.Init(ctx, cfg.ServiceName, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error().Err(err).Msg("tracing shutdown failed")
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Name),
	)
	appMetrics, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	sender, err := mail.NewSender(cfg.Mail, log)
	if err != nil {
		return fmt.Errorf("init mail sender: %w", err)
	}
	gatewayOpts := []mail.Option{mail.WithMetrics(appMetrics), mail.WithLogger(log)}
	if cfg.MinIO.Endpoint != "" {
		objStore, err := storage.NewMinIO(ctx, cfg.MinIO, log)
		if err != nil {
			return fmt.Errorf("init object storage: %w", err)
		}
		gatewayOpts = append(gatewayOpts, mail.WithArchive(mail.NewArchive(objStore)))
	}
	gateway := mail.NewGateway(cfg.Mail, sender, gatewayOpts...)

	contactSvc := service.NewContactService(postgres.NewContactPostgres(db), appMetrics)
	favoriteSvc := service.NewFavoriteService(postgres.NewFavoriteEventPostgres(db))
	mailSvc := service.NewMailService(gateway)

	app, err := newApp(cfg, log, reg, db, contactSvc, favoriteSvc, mailSvc)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", ":"+cfg.Port).
			Str("mail_provider", cfg.Mail.Provider).
			Bool("mail_archive", cfg.MinIO.Endpoint != "").
			Msg("server listening")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newApp builds the Fiber app with the global middleware chain and every route.
func newApp(
	cfg *config.AppConfig,
	log zerolog.Logger,
	reg *prometheus.Registry,
	db database.Pinger,
	contactSvc service.ContactService,
	favoriteSvc service.FavoriteService,
	mailSvc service.MailService,
) (*fiber.App, error) {
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Origins(), ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, contactSvc, favoriteSvc, mailSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, nil
}
