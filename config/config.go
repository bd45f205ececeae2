package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the app reads from the environment. It is built
// once in main and handed to the components that need it; there is no
// package-level state.
type Config struct {
	AppPort string
	AppMode string // "dev" or "prod", selects gin/zap modes

	// Database: DATABASE_URL wins, otherwise the parts below.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads .env if present, then the environment, applying defaults.
func Load() *Config {
	_ = godotenv.Load()

	ttlMinutes := getEnvAsInt("TOKEN_EXPIRE_MINUTES", 30)

	return &Config{
		AppPort:     getEnv("PORT", "8080"),
		AppMode:     getEnv("APP_MODE", "dev"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "sweetshop"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-here"),
		TokenTTL:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	i, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return i
}
