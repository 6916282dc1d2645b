package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	ShortLink ShortLinkConfig `yaml:"shortlink"`
	EventLog  EventLogConfig  `yaml:"eventlog"`
	GeoIP     GeoIPConfig     `yaml:"geoip"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `yaml:"port"`
	BaseURL         string        `yaml:"base_url"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ShortLinkConfig holds link lifecycle settings
type ShortLinkConfig struct {
	DefaultValidityMinutes float64 `yaml:"default_validity_minutes"`
}

// EventLogConfig holds settings for the remote diagnostic log collector.
// An empty Endpoint disables forwarding.
type EventLogConfig struct {
	Endpoint     string        `yaml:"endpoint"`
	AuthToken    string        `yaml:"auth_token"`
	Timeout      time.Duration `yaml:"timeout"`
	QueueSize    int           `yaml:"queue_size"`
	DrainTimeout time.Duration `yaml:"drain_timeout"`
}

// GeoIPConfig holds settings for client IP geolocation
type GeoIPConfig struct {
	DBPath   string        `yaml:"db_path"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level                  string        `yaml:"level"`
	Format                 string        `yaml:"format"`
	AccessLogPath          string        `yaml:"access_log_path"`
	AccessLogFlushInterval time.Duration `yaml:"access_log_flush_interval"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		ShortLink: ShortLinkConfig{
			DefaultValidityMinutes: 30,
		},
		EventLog: EventLogConfig{
			Timeout:      5 * time.Second,
			QueueSize:    256,
			DrainTimeout: 5 * time.Second,
		},
		GeoIP: GeoIPConfig{
			CacheTTL: time.Hour,
		},
		Log: LogConfig{
			Level:                  "info",
			Format:                 "json",
			AccessLogFlushInterval: 3 * time.Second,
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist), applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.BaseURL = getEnv("BASE_URL", c.Server.BaseURL)
	c.Server.ShutdownTimeout = getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)

	c.ShortLink.DefaultValidityMinutes = getFloatEnv("DEFAULT_VALIDITY_MINUTES", c.ShortLink.DefaultValidityMinutes)

	c.EventLog.Endpoint = getEnv("LOG_API_URL", c.EventLog.Endpoint)
	c.EventLog.AuthToken = getEnv("LOG_API_AUTH_TOKEN", c.EventLog.AuthToken)
	c.EventLog.Timeout = getDurationEnv("LOG_API_TIMEOUT", c.EventLog.Timeout)

	c.GeoIP.DBPath = getEnv("GEOIP_DB_PATH", c.GeoIP.DBPath)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Log.AccessLogPath = getEnv("ACCESS_LOG_PATH", c.Log.AccessLogPath)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %s (must be 1-65535)", c.Server.Port)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server shutdown timeout must be positive")
	}

	if c.ShortLink.DefaultValidityMinutes <= 0 {
		return fmt.Errorf("default validity must be positive, got %v", c.ShortLink.DefaultValidityMinutes)
	}

	if c.EventLog.QueueSize <= 0 {
		return fmt.Errorf("eventlog queue size must be positive, got %d", c.EventLog.QueueSize)
	}
	if c.EventLog.Timeout <= 0 || c.EventLog.DrainTimeout <= 0 {
		return errors.New("eventlog timeouts must be positive")
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Log.Format)
	}

	if c.Log.AccessLogPath != "" && c.Log.AccessLogFlushInterval <= 0 {
		return errors.New("access log flush interval must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getFloatEnv(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
