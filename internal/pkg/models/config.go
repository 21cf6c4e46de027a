package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
	Dispatch DispatchConfig
	Policy   PolicyConfig
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

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig contains API keys for service-to-service calls
type APIKeyConfig struct {
	AdminService    string
	DriverService   string
	DispatchService string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// DispatchConfig contains dispatch engine configuration
type DispatchConfig struct {
	// ConfirmationTTLSeconds bounds how long a passenger may sit on an
	// out-of-fence confirmation before it expires.
	ConfirmationTTLSeconds int
	// LocationStalenessSeconds is the validity window for driver location
	// pings; older locations count toward neither fence bucket.
	LocationStalenessSeconds int
	// EvaluationIntervalSeconds drives the periodic community
	// auto-activation sweep. Zero disables the sweep.
	EvaluationIntervalSeconds int
}

// SensitiveFallbackMode selects the fallback tier offered to sensitive
// neighborhoods when no in-fence driver exists.
type SensitiveFallbackMode string

const (
	SensitiveFallbackNeighborOnly SensitiveFallbackMode = "neighbor-only"
	SensitiveFallbackBlocked      SensitiveFallbackMode = "blocked"
)

// PolicyConfig contains neighborhood policy configuration
type PolicyConfig struct {
	SensitiveNeighborhoods []string
	// NeighborMap maps a neighborhood name to its allowed fallback neighbors.
	NeighborMap       map[string][]string
	SensitiveFallback SensitiveFallbackMode
}
