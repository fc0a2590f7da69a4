package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

// InitConfig loads configuration from a .env file in local environments and
// from the process environment everywhere else.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/lapakin.log")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "postgres")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 0)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// NSQ config
	configs.NSQ.NSQDAddress = GetEnv("NSQ_NSQD_ADDRESS", "")
	configs.NSQ.LookupdAddresses = GetEnvAsSlice("NSQ_LOOKUPD_ADDRESSES", nil)
	configs.NSQ.Channel = GetEnv("NSQ_CHANNEL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// API keys for service-to-service calls
	configs.APIKey.BillingService = GetEnv("BILLING_SERVICE_API_KEY", "")
	configs.APIKey.CoreService = GetEnv("CORE_SERVICE_API_KEY", "")
	configs.APIKey.OrderService = GetEnv("ORDER_SERVICE_API_KEY", "")
	configs.APIKey.PortalService = GetEnv("PORTAL_SERVICE_API_KEY", "")

	// Stripe config
	configs.Stripe.SecretKey = GetEnv("STRIPE_SECRET_KEY", "")
	configs.Stripe.WebhookSecret = GetEnv("STRIPE_WEBHOOK_SECRET", "")
	configs.Stripe.SuccessURL = GetEnv("STRIPE_SUCCESS_URL", "")
	configs.Stripe.CancelURL = GetEnv("STRIPE_CANCEL_URL", "")
	configs.Stripe.PortalReturnURL = GetEnv("STRIPE_PORTAL_RETURN_URL", "")
	configs.Stripe.OnboardReturnURL = GetEnv("STRIPE_ONBOARD_RETURN_URL", "")
	configs.Stripe.OnboardRefreshURL = GetEnv("STRIPE_ONBOARD_REFRESH_URL", "")

	// Billing config
	configs.Billing.Currency = GetEnv("BILLING_CURRENCY", "idr")
	configs.Billing.PlatformFeePercent = GetEnvAsFloat("BILLING_PLATFORM_FEE_PERCENT", 5.0)
	configs.Billing.EventDedupTTLHours = GetEnvAsInt("BILLING_EVENT_DEDUP_TTL_HOURS", 24)

	// Services config
	configs.Services.CoreServiceURL = GetEnv("CORE_SERVICE_URL", "http://localhost:9990")
	configs.Services.BillingServiceURL = GetEnv("BILLING_SERVICE_URL", "http://localhost:9994")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsSlice reads a comma-separated environment variable
func GetEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
