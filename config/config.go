package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/bill-printing-app/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	DBDriver    string
	DatabaseURL string

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	AMQPURL     string
	CORSOrigins []string

	RestaurantName    string
	RestaurantAddress string
	RestaurantPhone   string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found, using environment")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           os.Getenv("GIN_MODE"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AMQPURL:           os.Getenv("AMQP_URL"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "*")),
		RestaurantName:    getEnv("RESTAURANT_NAME", "Bill Printing App"),
		RestaurantAddress: os.Getenv("RESTAURANT_ADDRESS"),
		RestaurantPhone:   os.Getenv("RESTAURANT_PHONE"),
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "bill_printing.db"
		}
	case DriverMySQL, DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for driver %s", cfg.DBDriver)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.JWTSecret == "" {
		if cfg.GinMode == gin.ReleaseMode {
			return nil, fmt.Errorf("JWT_SECRET is required when GIN_MODE=%s", gin.ReleaseMode)
		}
		utils.ErrorLogger.Warn("JWT_SECRET is not set, staff tokens use an insecure default")
		cfg.JWTSecret = "change-me"
	}

	return cfg, nil
}

// Dialector picks the gorm driver for the configured database.
func (c *Config) Dialector() (gorm.Dialector, error) {
	switch c.DBDriver {
	case DriverMySQL:
		return mysql.Open(c.DatabaseURL), nil
	case DriverPostgres:
		return postgres.Open(c.DatabaseURL), nil
	case DriverSQLite:
		return sqlite.Open(c.DatabaseURL), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.GinMode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == DriverSQLite {
		// sqlite serialises writers; one connection avoids "database is locked".
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	utils.InfoLogger.Printf("Connected to %s database", cfg.DBDriver)
	return db, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
