package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Incident lifecycle
	RetentionWindow     time.Duration `env:"RETENTION_WINDOW" envDefault:"6h"`
	ClusterRadiusMeters float64       `env:"CLUSTER_RADIUS_METERS" envDefault:"500"`

	// Presence
	PresenceWindow time.Duration `env:"PRESENCE_WINDOW" envDefault:"5m"`

	// Admin credential (единая общая учетка, как в исходной системе)
	AdminAccount string `env:"ADMIN_ACCOUNT" envDefault:"admin"`
	AdminPin     string `env:"ADMIN_PIN" envDefault:"123456"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Geocoding proxy
	GeocodeBaseURL   string `env:"GEOCODE_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocodeUserAgent string `env:"GEOCODE_USER_AGENT" envDefault:"CommunityMapApp/1.0"`

	// HTTP edge
	CORSOrigins     []string `env:"CORS_ORIGINS" envDefault:"*"`
	CreateRateRPS   float64  `env:"CREATE_RATE_RPS" envDefault:"0.333"`
	CreateRateBurst int      `env:"CREATE_RATE_BURST" envDefault:"2"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		RetentionWindow:     getEnvAsDuration("RETENTION_WINDOW", 6*time.Hour),
		ClusterRadiusMeters: getEnvAsFloat("CLUSTER_RADIUS_METERS", 500),
		PresenceWindow:      getEnvAsDuration("PRESENCE_WINDOW", 5*time.Minute),
		AdminAccount:        getEnv("ADMIN_ACCOUNT", "admin"),
		AdminPin:            getEnv("ADMIN_PIN", "123456"),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		GeocodeBaseURL:      getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeUserAgent:    getEnv("GEOCODE_USER_AGENT", "CommunityMapApp/1.0"),
		CreateRateRPS:       getEnvAsFloat("CREATE_RATE_RPS", 1.0/3.0),
		CreateRateBurst:     getEnvAsInt("CREATE_RATE_BURST", 2),
	}

	// Список разрешенных CORS-источников
	originsStr := getEnv("CORS_ORIGINS", "*")
	cfg.CORSOrigins = strings.Split(originsStr, ",")
	for i, origin := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(origin)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
