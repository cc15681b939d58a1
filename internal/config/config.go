package config

import (
	"os"
	"strconv"
)

// Environment profiles.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env             string
	ServerPort      string
	MySQLDSN        string
	SecretKey       string
	TokenTTLSeconds int
	BucketsPerPage  int
	SwaggerHost     string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("APP_ENV", EnvDevelopment),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/bucky?charset=utf8mb4&parseTime=True&loc=Local"),
		SecretKey:       getEnv("SECRET_KEY", "change-me"),
		TokenTTLSeconds: getEnvInt("TOKEN_TTL_SECONDS", 3600),
		BucketsPerPage:  getEnvInt("BUCKETS_PER_PAGE", 3),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
	}
}

// IsProduction reports whether the production profile is active.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// IsTesting reports whether the testing profile is active.
func (c *Config) IsTesting() bool {
	return c.Env == EnvTesting
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
