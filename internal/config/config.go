// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	AWS         AWSConfig
	Contact     ContactConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// DatabaseConfig points at the hosted record store's Postgres endpoint. All
// values may legitimately be empty: the store client then fails every call and
// the acquisition layer serves fallback data instead.
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

// AuthConfig describes the external identity provider. ProviderURL and AnonKey
// are the two public values the hosted backend hands out; JWTSecret is the
// provider's shared signing secret used to verify session tokens locally.
type AuthConfig struct {
	ProviderURL string
	AnonKey     string
	JWTSecret   string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

type ContactConfig struct {
	WhatsApp string
	Email    string
	Facebook string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", ""),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "postgres"),
			SSLMode:      getEnv("DB_SSL_MODE", "require"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		Auth: AuthConfig{
			ProviderURL: getEnv("AUTH_PROVIDER_URL", ""),
			AnonKey:     getEnv("AUTH_ANON_KEY", ""),
			JWTSecret:   getEnv("AUTH_JWT_SECRET", ""),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "ap-southeast-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "ffbazaar-assets"),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
		Contact: ContactConfig{
			WhatsApp: getEnv("CONTACT_WHATSAPP", "+8801700000000"),
			Email:    getEnv("CONTACT_EMAIL", "support@ffbazaar.com"),
			Facebook: getEnv("CONTACT_FACEBOOK", "https://facebook.com/ffbazaar"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Environment == "production" && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth JWT secret is required in production")
	}

	return nil
}

// Demoable reports whether the process is running without any remote backend
// configured. Everything still works; reads serve the fallback dataset.
func (c *Config) Demoable() bool {
	return c.Database.Host == "" && c.Auth.ProviderURL == ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
