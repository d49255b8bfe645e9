package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	JWT      JWTConfig
	Match    MatchConfig
	Cache    CacheConfig
	Limits   RateLimitConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
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
	ReadTimeout     int // in seconds
	WriteTimeout    int // in seconds
	ShutdownTimeout int // in seconds
}

// DatabaseConfig contains database connection configuration.
// Driver is one of "postgres", "pgx" or "sqlite3"; for sqlite3 Database is the file path.
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

// BrokerConfig selects where domain events are published.
// Type is one of "none", "nats", "nsq" or "kafka".
type BrokerConfig struct {
	Type         string
	NATSURL      string
	NSQAddr      string
	KafkaBrokers []string
	KafkaTopic   string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// MatchConfig tunes helper selection
type MatchConfig struct {
	MaxRadiusKm         float64 `json:"max_radius_km"` // 0 disables the cutoff
	ExclusiveAssignment bool    `json:"exclusive_assignment"`
}

// CacheConfig contains read-through cache settings
type CacheConfig struct {
	TTLSeconds int
}

// RateLimitConfig caps how often an actor may hit write endpoints
type RateLimitConfig struct {
	SubmitPerMinute int // 0 disables the limit
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
