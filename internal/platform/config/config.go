package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers understood by StoreDriver.
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Persistence
	StoreDriver          string
	MongoURI             string
	MongoDatabase        string
	MongoUseTransactions bool
	DatabaseURL          string

	// Access gate
	APIKey               string
	APIKeyLoopbackBypass bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Login rate limiting, formatted for ulule/limiter (e.g. "5-M").
	LoginRateLimit string
	RedisURL       string

	CORSAllowedOrigins []string
	UploadMaxBytes     int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "5000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("STORE_DRIVER", StoreMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "hr_db")
	v.SetDefault("MONGO_USE_TRANSACTIONS", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("API_KEY", "your_super_secret_api_key")
	v.SetDefault("API_KEY_LOOPBACK_BYPASS", true)
	v.SetDefault("JWT_SECRET", "super-secret-key")
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", "hr-records-backend")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("UPLOAD_MAX_BYTES", 5<<20)

	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		StoreDriver:          strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		MongoURI:             v.GetString("MONGO_URI"),
		MongoDatabase:        v.GetString("MONGO_DATABASE"),
		MongoUseTransactions: v.GetBool("MONGO_USE_TRANSACTIONS"),
		DatabaseURL:          v.GetString("PGSQL_URL"),
		APIKey:               v.GetString("API_KEY"),
		APIKeyLoopbackBypass: v.GetBool("API_KEY_LOOPBACK_BYPASS"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		LoginRateLimit:       v.GetString("LOGIN_RATE_LIMIT"),
		RedisURL:             v.GetString("REDIS_URL"),
		UploadMaxBytes:       v.GetInt64("UPLOAD_MAX_BYTES"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreMongo, StorePostgres:
	default:
		log.Printf("Warning: Unknown STORE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StoreDriver, StoreMongo)
		cfg.StoreDriver = StoreMongo
	}
	if cfg.StoreDriver == StorePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: STORE_DRIVER is postgres but PGSQL_URL is not set.")
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "super-secret-key" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.APIKey == "" {
		log.Println("Warning: API_KEY is empty. Only loopback callers will reach protected routes.")
	}

	if cfg.UploadMaxBytes <= 0 {
		cfg.UploadMaxBytes = 5 << 20
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg
}
