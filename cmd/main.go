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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/community_map_system/internal/config"
	"github.com/shenikar/community_map_system/internal/geocode"
	v1 "github.com/shenikar/community_map_system/internal/handler/http/v1"
	"github.com/shenikar/community_map_system/internal/presence"
	"github.com/shenikar/community_map_system/internal/repository"
	"github.com/shenikar/community_map_system/internal/service"
	"github.com/shenikar/community_map_system/internal/store"
	"github.com/shenikar/community_map_system/internal/webhook"
	"github.com/shenikar/community_map_system/pkg/logger"
	"github.com/shenikar/community_map_system/pkg/postgres"
	redisclient "github.com/shenikar/community_map_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/community_map_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Community Map API
// @version 1.0
// @description Short-lived geolocated incident reports with live presence tracking.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey AdminAuth
// @in header
// @name X-Admin-Pin
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

	// Запуск миграций (таблицы сквозных данных сообщества)
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

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Ядро: хранилище инцидентов, реестр реакций, трекер присутствия
	incidentStore := store.NewIncidentStore(cfg.RetentionWindow, cfg.ClusterRadiusMeters)
	reactionLedger := store.NewReactionLedger()
	presenceTracker := presence.NewTracker(cfg.PresenceWindow)

	// Репозиторий сквозных данных сообщества
	communityRepo := repository.NewCommunityRepository(dbpool)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentStore, reactionLedger, presenceTracker, webhookPublisher, log)
	communityService := service.NewCommunityService(communityRepo, log)

	// Клиент геокодирования (внешний сервис, вызывается вне мьютексов ядра)
	geocoder := geocode.NewClient(cfg.GeocodeBaseURL, cfg.GeocodeUserAgent, 10*time.Second)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, communityService, geocoder, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Admin-Account", "X-Admin-Pin", "X-Identity-Key")
	router.Use(cors.New(corsConfig))

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
