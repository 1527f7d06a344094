package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"

	ordercache "github.com/Apurer/order-entry/internal/domains/orders/adapters/cache"
)

// Config carries environment-driven settings for the API and worker processes.
type Config struct {
	Port              string
	PostgresDSN       string
	AutoMigrate       bool
	SeedDemoData      bool
	RedisAddr         string
	TaxCacheTTL       time.Duration
	MailGatewayURL    string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		AutoMigrate:       isTruthy(os.Getenv("AUTO_MIGRATE")),
		SeedDemoData:      isTruthy(os.Getenv("SEED_DEMO_DATA")),
		RedisAddr:         strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		TaxCacheTTL:       ordercache.DefaultTTL,
		MailGatewayURL:    strings.TrimSpace(os.Getenv("MAIL_GATEWAY_URL")),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
	}
	if raw := strings.TrimSpace(os.Getenv("TAX_CACHE_TTL_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("TAX_CACHE_TTL_SECONDS must be a positive integer")
		}
		cfg.TaxCacheTTL = time.Duration(seconds) * time.Second
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
