package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Stripe   StripeConfig
	Billing  BillingConfig
	Services ServicesConfig
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains log output configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// ServicesConfig contains URLs for other microservices
type ServicesConfig struct {
	CoreServiceURL    string
	BillingServiceURL string
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress      string
	LookupdAddresses []string
	Channel          string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig contains the API keys for service-to-service calls
type APIKeyConfig struct {
	BillingService string
	CoreService    string
	OrderService   string
	PortalService  string
}

// StripeConfig contains payment provider credentials and redirect URLs
type StripeConfig struct {
	SecretKey         string
	WebhookSecret     string
	SuccessURL        string
	CancelURL         string
	PortalReturnURL   string
	OnboardReturnURL  string
	OnboardRefreshURL string
}

// BillingConfig contains billing service specific configuration
type BillingConfig struct {
	Currency           string
	PlatformFeePercent float64 // marketplace cut on payouts
	EventDedupTTLHours int
}
