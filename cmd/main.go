package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/config"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/handler"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/health"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/repository"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/runrecorder"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/telegram"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/middleware"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/delivery"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/window"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/trigger"
)

// Version is set via ldflags at build time
var Version = "dev"

const (
	serviceModule   = logging.Module("deadline-reminder")
	slowQueryCutoff = 200 * time.Millisecond
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local, BigQuery for gcloud
	resultRecorder, err := runrecorder.NewRecorder(ctx, runrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize run result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close run result recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(slowQueryCutoff, cfg.LogLevel),
	})
	if err != nil {
		slog.Error("failed to open database",
			slog.String("event", "db.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get database handle", slog.String("error", err.Error()))
		return 1
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		slog.Error("failed to connect database",
			slog.String("event", "db.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	slog.Info("database connected",
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)

	redisOpts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	taskRepo := repository.NewPersonalTaskRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	runRepo := repository.NewRunRepository(redisClient, cfg.Redis.KeyPrefix)

	dispatcher := telegram.NewClient(cfg.Telegram.APIURL, cfg.Telegram.Timeout)
	evaluator := window.NewEvaluator(window.NewSuppressor(cfg.Reminder.Suppression), cfg.Reminder.PollInterval)
	strategy := delivery.NewStrategy(cfg.Reminder.Delivery, taskRepo, dispatcher)

	reminderService := reminder.NewService(
		taskRepo,
		settingsRepo,
		evaluator,
		strategy,
		runRepo,
		runRepo,
		resultRecorder,
		reminderMetrics,
		cfg.Reminder,
	)
	reminderHandler := handler.NewReminderHandler(reminderService, cfg.Reminder.JobTimeout)

	schedulerAuth, err := middleware.SchedulerAuth(ctx, cfg.Trigger)
	if err != nil {
		slog.Error("failed to initialize scheduler auth", slog.String("error", err.Error()))
		return 1
	}

	// Setup router with observability middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:  []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:     serviceModule,
		Worker:     true,
		TracerName: "github.com/KasumiMercury/primind-deadline-reminder/internal/observability/middleware",
		JobNameResolver: func(c *gin.Context) string {
			return c.FullPath()
		},
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(Version).
		With("redis", health.RedisPinger(redisClient)).
		With("postgres", health.SQLPinger(sqlDB))
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	reminderHandler.RegisterRoutes(r.Group("", schedulerAuth))

	var scheduler *trigger.Scheduler
	if cfg.Trigger.Cron != "" {
		scheduler, err = trigger.NewScheduler(cfg.Trigger.Cron, reminderService, cfg.Reminder.JobTimeout, cfg.Reminder.Location)
		if err != nil {
			slog.Error("failed to initialize scheduler", slog.String("error", err.Error()))
			return 1
		}
		scheduler.Start(ctx)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Reminder.Location.String()),
			slog.Duration("poll_interval", cfg.Reminder.PollInterval),
			slog.String("suppression", string(cfg.Reminder.Suppression)),
			slog.String("delivery", strategy.Name()),
			slog.Bool("in_process_schedule", scheduler != nil),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if scheduler != nil {
			scheduler.Stop(shutdownCtx)
		}

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
