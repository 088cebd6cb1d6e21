package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	AppURL   string
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	SMTP     SMTPConfig
	Creator  CreatorConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessTokenMins  int
	RefreshTokenDays int
}

// CookieConfig holds refresh cookie configuration
type CookieConfig struct {
	MaxAgeDays int
	Secure     bool
	SameSite   string
	Domain     string
}

// SMTPConfig holds outbound mail configuration
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// CreatorConfig holds the bootstrap creator account
type CreatorConfig struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		AppURL:   getEnv("APP_URL", "http://localhost:3000"),
		Database: loadDatabaseConfig(),
		JWT:      loadJWTConfig(),
		Cookie:   loadCookieConfig(),
		SMTP:     loadSMTPConfig(),
		Creator:  loadCreatorConfig(),
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "bulivard"),
	}
}

func loadJWTConfig() JWTConfig {
	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "15"))
	refreshDays, _ := strconv.Atoi(getEnv("REFRESH_TOKEN_DAYS", "7"))

	return JWTConfig{
		AccessSecret:     getEnv("ACCESS_SECRET", "default_access_secret"),
		RefreshSecret:    getEnv("REFRESH_SECRET", "default_refresh_secret"),
		AccessTokenMins:  accessMins,
		RefreshTokenDays: refreshDays,
	}
}

func loadCookieConfig() CookieConfig {
	maxAgeDays, _ := strconv.Atoi(getEnv("COOKIE_MAX_AGE_DAYS", "7"))
	secure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))

	return CookieConfig{
		MaxAgeDays: maxAgeDays,
		Secure:     secure,
		SameSite:   getEnv("COOKIE_SAMESITE", "lax"),
		Domain:     getEnv("COOKIE_DOMAIN", ""),
	}
}

func loadSMTPConfig() SMTPConfig {
	return SMTPConfig{
		Host: getEnv("SMTP_HOST", ""),
		Port: getEnv("SMTP_PORT", "587"),
		User: getEnv("SMTP_USER", ""),
		Pass: getEnv("SMTP_PASS", ""),
		From: getEnv("SMTP_FROM", "no-reply@bulivard.app"),
	}
}

func loadCreatorConfig() CreatorConfig {
	return CreatorConfig{
		FullName:    getEnv("CREATOR_NAME", "Default Creator"),
		Email:       getEnv("CREATOR_EMAIL", "creator@bulivard.app"),
		Password:    getEnv("CREATOR_PASSWORD", "12345678"),
		PhoneNumber: getEnv("CREATOR_PHONE", "+996555555555"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" && c.IsDev() {
		return "*"
	}
	return origins
}
