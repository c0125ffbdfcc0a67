package config

import (
	"fmt"
	"os"
	"time"

	"watermyplants/internal/client"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Register RegisterConfig
	FormTTL  time.Duration
	Database DatabaseConfig
}

// RegisterConfig holds registration API settings
type RegisterConfig struct {
	URL     string
	Timeout time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := getDuration("REGISTER_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	ttl, err := getDuration("FORM_IDLE_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Register: RegisterConfig{
			URL:     getEnv("REGISTER_URL", client.DefaultRegisterURL),
			Timeout: timeout,
		},
		FormTTL: ttl,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "watermyplants"),
			User:     getEnv("DB_USER", "watermyplants"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	return cfg, nil
}

// LoadBot reads configuration and checks the settings the bot needs
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	return cfg, nil
}

// JournalEnabled reports whether submissions go to PostgreSQL
func (c *Config) JournalEnabled() bool {
	return c.Database.Password != ""
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
