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

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Mail Config
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	MailFromName   string `env:"MAIL_FROM_NAME" envDefault:"HelpMet"`
	MailFromEmail  string `env:"MAIL_FROM_EMAIL"`
	AppBaseURL     string `env:"APP_BASE_URL" envDefault:"http://localhost:3000"`

	// Uploads Config
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`
	UploadBaseURL  string `env:"UPLOAD_BASE_URL" envDefault:"/uploads"`
	MaxUploadFiles int    `env:"MAX_UPLOAD_FILES" envDefault:"5"`

	// Reports Config
	ReportTimeZone string        `env:"REPORT_TIMEZONE" envDefault:"America/Vancouver"`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"5m"`

	// Alerts Config
	AlertSweepInterval time.Duration `env:"ALERT_SWEEP_INTERVAL" envDefault:"30s"`
	AlertSweepBatch    int           `env:"ALERT_SWEEP_BATCH" envDefault:"50"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// loc - разобранный ReportTimeZone, заполняется в LoadConfig
	loc *time.Location
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		MailFromName:       getEnv("MAIL_FROM_NAME", "HelpMet"),
		MailFromEmail:      os.Getenv("MAIL_FROM_EMAIL"),
		AppBaseURL:         strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:3000"), "/"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		UploadBaseURL:      strings.TrimRight(getEnv("UPLOAD_BASE_URL", "/uploads"), "/"),
		MaxUploadFiles:     getEnvAsInt("MAX_UPLOAD_FILES", 5),
		ReportTimeZone:     getEnv("REPORT_TIMEZONE", "America/Vancouver"),
		ReportCacheTTL:     getEnvAsDuration("REPORT_CACHE_TTL", 5*time.Minute),
		AlertSweepInterval: getEnvAsDuration("ALERT_SWEEP_INTERVAL", 30*time.Second),
		AlertSweepBatch:    getEnvAsInt("ALERT_SWEEP_BATCH", 50),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	loc, err := loadReportLocation(cfg.ReportTimeZone)
	if err != nil {
		return nil, err
	}
	cfg.loc = loc

	return cfg, nil
}

// loadReportLocation принимает только имена из базы IANA: имя пояса уходит в запросы
// статистики, а Postgres не знает "Local" и пустую строку.
func loadReportLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE %q: an IANA time zone name is required", name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

// Location возвращает часовой пояс, в котором нормализуются даты травм.
// Для конфигурации, собранной без LoadConfig, пояс разбирается на месте, при ошибке - UTC.
func (c *Config) Location() *time.Location {
	if c.loc != nil {
		return c.loc
	}
	loc, err := loadReportLocation(c.ReportTimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
