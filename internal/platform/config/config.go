package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StoreDriver    string
	MigrationsPath string
	JWTSecret      string

	FrontendBaseURL string
	BidRateLimit    string

	KafkaBrokers     []string
	KafkaOutbidTopic string

	// RecentlyClosedWindow is how long a bidder keeps seeing an auction after it ends.
	RecentlyClosedWindow time.Duration
	DefaultPageSize      int
	MaxPageSize          int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("BID_RATE_LIMIT", "30-M")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_OUTBID_TOPIC", "auction-outbid")
	v.SetDefault("RECENTLY_CLOSED_WINDOW", "24h")
	v.SetDefault("DEFAULT_PAGE_SIZE", 9)
	v.SetDefault("MAX_PAGE_SIZE", 100)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		StoreDriver:      strings.ToLower(v.GetString("STORE_DRIVER")),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		FrontendBaseURL:  v.GetString("FRONTEND_BASE_URL"),
		BidRateLimit:     v.GetString("BID_RATE_LIMIT"),
		KafkaOutbidTopic: v.GetString("KAFKA_OUTBID_TOPIC"),
		DefaultPageSize:  v.GetInt("DEFAULT_PAGE_SIZE"),
		MaxPageSize:      v.GetInt("MAX_PAGE_SIZE"),
	}

	if brokers := strings.TrimSpace(v.GetString("KAFKA_BROKERS")); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORE_DRIVER is %q", StoreDriverPostgres)
		}
	case StoreDriverMemory:
		log.Println("Warning: STORE_DRIVER=memory, auctions and bids are not persisted.")
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	windowStr := v.GetString("RECENTLY_CLOSED_WINDOW")
	window, err := time.ParseDuration(windowStr)
	if err != nil || window < 0 {
		window = 24 * time.Hour
		log.Printf("Warning: Invalid value for RECENTLY_CLOSED_WINDOW ('%s'). Defaulting to %s.\n", windowStr, window)
	}
	cfg.RecentlyClosedWindow = window

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 9
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}

	return cfg, nil
}
