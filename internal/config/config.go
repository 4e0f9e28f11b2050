package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Business  BusinessConfig  `mapstructure:"business"`
	Health    HealthConfig    `mapstructure:"health"`
}

type ServerConfig struct {
	Port         string `mapstructure:"SERVER_PORT"`
	Host         string `mapstructure:"SERVER_HOST"`
	Env          string `mapstructure:"ENV"`
	ReadTimeout  string `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout string `mapstructure:"SERVER_WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	URL          string `mapstructure:"DATABASE_URL"`
	MaxOpenConns int    `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns int    `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type SchedulerConfig struct {
	Timezone    string `mapstructure:"SCHEDULER_TIMEZONE"`
	NoShowGrace string `mapstructure:"SCHEDULER_NO_SHOW_GRACE"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

type BusinessConfig struct {
	DefaultWeekendMultiplier string `mapstructure:"DEFAULT_WEEKEND_MULTIPLIER"`
	VerificationCodeLength   int    `mapstructure:"VERIFICATION_CODE_LENGTH"`
	VerificationCodeTTL      string `mapstructure:"VERIFICATION_CODE_TTL"`
	RateProfileCacheTTL      string `mapstructure:"RATE_PROFILE_CACHE_TTL"`
}

type HealthConfig struct {
	Timeout string `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("DEFAULT_WEEKEND_MULTIPLIER", "1.0")
	viper.SetDefault("VERIFICATION_CODE_LENGTH", 6)
	viper.SetDefault("VERIFICATION_CODE_TTL", "120s")
	viper.SetDefault("RATE_PROFILE_CACHE_TTL", "24h")
	viper.SetDefault("SCHEDULER_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("SCHEDULER_NO_SHOW_GRACE", "15m")
	viper.SetDefault("HEALTH_CHECK_TIMEOUT", "5s")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read from .env file (optional)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./deployments")

	// Don't fail if .env file doesn't exist
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Business.VerificationCodeLength <= 0 {
		return fmt.Errorf("VERIFICATION_CODE_LENGTH must be greater than 0")
	}

	// Validate weekend multiplier
	if _, err := decimal.NewFromString(c.Business.DefaultWeekendMultiplier); err != nil {
		return fmt.Errorf("DEFAULT_WEEKEND_MULTIPLIER must be a valid decimal: %w", err)
	}

	// Validate durations
	for name, value := range map[string]string{
		"SERVER_READ_TIMEOUT":     c.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":    c.Server.WriteTimeout,
		"VERIFICATION_CODE_TTL":   c.Business.VerificationCodeTTL,
		"RATE_PROFILE_CACHE_TTL":  c.Business.RateProfileCacheTTL,
		"SCHEDULER_NO_SHOW_GRACE": c.Scheduler.NoShowGrace,
		"HEALTH_CHECK_TIMEOUT":    c.Health.Timeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s must be a valid duration: %w", name, err)
		}
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// GetDefaultWeekendMultiplier returns the default weekend multiplier as decimal
func (c *Config) GetDefaultWeekendMultiplier() decimal.Decimal {
	multiplier, _ := decimal.NewFromString(c.Business.DefaultWeekendMultiplier)
	return multiplier
}

// GetVerificationCodeTTL returns the verification code lifetime as duration
func (c *Config) GetVerificationCodeTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Business.VerificationCodeTTL)
	return ttl
}

// GetRateProfileCacheTTL returns the rate profile cache lifetime as duration
func (c *Config) GetRateProfileCacheTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Business.RateProfileCacheTTL)
	return ttl
}

// GetNoShowGrace returns how long after its start a booking may stay unclaimed
func (c *Config) GetNoShowGrace() time.Duration {
	grace, _ := time.ParseDuration(c.Scheduler.NoShowGrace)
	return grace
}

// GetServerReadTimeout returns the HTTP read timeout as duration
func (c *Config) GetServerReadTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Server.ReadTimeout)
	return timeout
}

// GetServerWriteTimeout returns the HTTP write timeout as duration
func (c *Config) GetServerWriteTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Server.WriteTimeout)
	return timeout
}

// GetHealthTimeout returns the health check timeout as duration
func (c *Config) GetHealthTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Health.Timeout)
	return timeout
}
