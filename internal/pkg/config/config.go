package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configPath into the environment when running locally, then reads the config from the environment
func InitConfig(configPath string) *models.Config {
	local := os.Getenv("APP_ENV")
	if local == "" || local == "local" {
		// Load config from file
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return Load(NewViper())
}

// NewViper returns a viper instance bound to the environment with every default registered
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

var defaults = map[string]interface{}{
	"APP_NAME":    "nearfix",
	"APP_ENV":     "local",
	"APP_DEBUG":   false,
	"APP_VERSION": "dev",

	"SERVER_HOST":             "0.0.0.0",
	"SERVER_PORT":             8080,
	"SERVER_READ_TIMEOUT":     15,
	"SERVER_WRITE_TIMEOUT":    15,
	"SERVER_SHUTDOWN_TIMEOUT": 30,

	"DB_DRIVER":     "postgres",
	"DB_HOST":       "localhost",
	"DB_PORT":       5432,
	"DB_USERNAME":   "postgres",
	"DB_PASSWORD":   "",
	"DB_DATABASE":   "nearfix",
	"DB_SSL_MODE":   "disable",
	"DB_MAX_CONNS":  10,
	"DB_IDLE_CONNS": 2,

	"REDIS_HOST":      "localhost",
	"REDIS_PORT":      6379,
	"REDIS_PASSWORD":  "",
	"REDIS_DB":        0,
	"REDIS_POOL_SIZE": 10,

	"BROKER_TYPE":   "none",
	"NATS_URL":      "nats://localhost:4222",
	"NSQ_ADDR":      "localhost:4150",
	"KAFKA_BROKERS": "localhost:9092",
	"KAFKA_TOPIC":   "nearfix-events",

	"JWT_SECRET":     "",
	"JWT_EXPIRATION": 60,
	"JWT_ISSUER":     "nearfix",

	"MATCH_MAX_RADIUS_KM":        0.0,
	"MATCH_EXCLUSIVE_ASSIGNMENT": false,

	"CACHE_TTL_SECONDS": 300,

	"RATE_LIMIT_SUBMIT_PER_MINUTE": 30,

	"NEW_RELIC_ENABLED":      false,
	"NEW_RELIC_LICENSE_KEY":  "",
	"NEW_RELIC_APP_NAME":     "nearfix",
	"NEW_RELIC_FORWARD_LOGS": false,

	"LOG_LEVEL":     "info",
	"LOG_FILE_PATH": "",
}

// Load builds the application config from v
func Load(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Broker config
	configs.Broker.Type = strings.ToLower(v.GetString("BROKER_TYPE"))
	configs.Broker.NATSURL = v.GetString("NATS_URL")
	configs.Broker.NSQAddr = v.GetString("NSQ_ADDR")
	configs.Broker.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	configs.Broker.KafkaTopic = v.GetString("KAFKA_TOPIC")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Match config
	configs.Match.MaxRadiusKm = v.GetFloat64("MATCH_MAX_RADIUS_KM")
	configs.Match.ExclusiveAssignment = v.GetBool("MATCH_EXCLUSIVE_ASSIGNMENT")
	if configs.Match.MaxRadiusKm < 0 {
		log.Printf("Warning: negative MATCH_MAX_RADIUS_KM %v, disabling the cutoff", configs.Match.MaxRadiusKm)
		configs.Match.MaxRadiusKm = 0
	}

	// Cache config
	configs.Cache.TTLSeconds = v.GetInt("CACHE_TTL_SECONDS")

	// Rate limit config
	configs.Limits.SubmitPerMinute = v.GetInt("RATE_LIMIT_SUBMIT_PER_MINUTE")

	// NewRelic config
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
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
