package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/safety_incident_tracker/internal/config"
	v1 "github.com/shenikar/safety_incident_tracker/internal/handler/http/v1"
	"github.com/shenikar/safety_incident_tracker/internal/metrics"
	"github.com/shenikar/safety_incident_tracker/internal/notify"
	"github.com/shenikar/safety_incident_tracker/internal/repository"
	"github.com/shenikar/safety_incident_tracker/internal/scheduler"
	"github.com/shenikar/safety_incident_tracker/internal/service"
	"github.com/shenikar/safety_incident_tracker/internal/storage"
	"github.com/shenikar/safety_incident_tracker/pkg/logger"
	"github.com/shenikar/safety_incident_tracker/pkg/postgres"
	redisclient "github.com/shenikar/safety_incident_tracker/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safety_incident_tracker/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title HelpMet Safety Incident Tracker API
// @version 1.0
// @description Workplace safety incident tracker: injury reports, alerts, directory, equipment and dashboard statistics.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newMailer выбирает SendGrid, если задан ключ, иначе письма только пишутся в лог
func newMailer(cfg *config.Config, log *logrus.Logger) notify.Mailer {
	if cfg.SendGridAPIKey == "" {
		log.Warn("SENDGRID_API_KEY is not set, emails will only be logged")
		return notify.NewLogMailer(log)
	}
	return notify.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFromName, cfg.MailFromEmail)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Хранилище загруженных файлов
	fileStore, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Метрики
	metrics.Register()

	// Очередь уведомлений и воркер рассылки
	publisher := notify.NewRedisPublisher(redisClient)
	metrics.RegisterQueueLength(publisher, 2*time.Second)

	notifyWorker := notify.NewWorker(redisClient, newMailer(cfg, log), log, cfg)
	notifyWorker.Start(ctx)

	// Инициализация репозиториев
	reportRepo := repository.NewReportRepository(dbpool, redisClient, cfg.ReportCacheTTL)
	alertRepo := repository.NewAlertRepository(dbpool)
	directoryRepo := repository.NewDirectoryRepository(dbpool)
	equipmentRepo := repository.NewEquipmentRepository(dbpool)
	statsRepo := repository.NewStatsRepository(dbpool)

	// Инициализация сервисов
	reportService := service.NewReportService(reportRepo, directoryRepo, fileStore, publisher, log, cfg)
	alertService := service.NewAlertService(alertRepo, fileStore, publisher, log, cfg)
	directoryService := service.NewDirectoryService(directoryRepo, log)
	equipmentService := service.NewEquipmentService(equipmentRepo, log)
	statsService := service.NewStatsService(statsRepo, log, cfg)

	// Рассылка запланированных оповещений
	sweeper := scheduler.NewAlertSweeper(alertService, cfg.AlertSweepInterval, log)
	sweeper.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(reportService, alertService, directoryService, equipmentService, statsService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.GinMiddleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Загруженные изображения и вложения
	router.Static(cfg.UploadBaseURL, cfg.UploadDir)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер и планировщик
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
