package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAnalysisTimeout = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds application configuration for both the API and the analysis service.
type Config struct {
	DatabaseURL    string
	Port           string
	AnalysisPort   string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Empty AnalysisServiceURL keeps estimation in-process.
	AnalysisServiceURL     string
	AnalysisServiceTimeout time.Duration

	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "100-M"

	// Empty AMQPURL disables revenue event publishing.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	ShutdownTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ANALYSIS_PORT", "8081")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("ANALYSIS_SERVICE_URL", "")
	viper.SetDefault("ANALYSIS_SERVICE_TIMEOUT", defaultAnalysisTimeout.String())
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "faturamento.events")
	viper.SetDefault("AMQP_QUEUE", "faturamento.revenue_entries")
	viper.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())

	// Real environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		AnalysisPort:       viper.GetString("ANALYSIS_PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:     viper.GetString("MIGRATIONS_PATH"),
		AnalysisServiceURL: strings.TrimRight(viper.GetString("ANALYSIS_SERVICE_URL"), "/"),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		AMQPURL:            viper.GetString("AMQP_URL"),
		AMQPExchange:       viper.GetString("AMQP_EXCHANGE"),
		AMQPQueue:          viper.GetString("AMQP_QUEUE"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.AnalysisPort == "" {
		cfg.AnalysisPort = "8081"
	}

	cfg.AnalysisServiceTimeout = durationOr("ANALYSIS_SERVICE_TIMEOUT", defaultAnalysisTimeout)
	cfg.ShutdownTimeout = durationOr("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)

	return cfg, nil
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			slog.Warn("Invalid duration, using default",
				slog.String("key", key),
				slog.String("value", raw),
				slog.String("default", fallback.String()))
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
