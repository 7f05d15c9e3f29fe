// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Slack      SlackConfig      `yaml:"slack"`
	Source     SourceConfig     `yaml:"source"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// SlackConfig defines Slack notification settings. When disabled, alerts
// are discarded through the no-op notifier.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	APIURL   string `yaml:"api_url"`
}

// SourceConfig defines price source (scraper) settings.
type SourceConfig struct {
	Timeout        time.Duration   `yaml:"timeout"`
	UserAgent      string          `yaml:"user_agent"`
	ReaderProxyURL string          `yaml:"reader_proxy_url"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines outbound request rate limiting settings.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// ScheduleConfig defines the monitoring cadence.
type ScheduleConfig struct {
	CheckInterval time.Duration `yaml:"check_interval"`
}

// MonitoringConfig defines change-detection behavior.
type MonitoringConfig struct {
	// PriceTolerance is the absolute difference below which two prices are
	// considered equal. Zero means exact comparison: any detectable
	// difference, including sub-cent rounding noise, counts as a change.
	PriceTolerance float64 `yaml:"price_tolerance"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applySlackDefaults(&cfg.Slack)
	applySourceDefaults(&cfg.Source)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applySlackDefaults(s *SlackConfig) {
	if s.APIURL == "" {
		s.APIURL = "https://slack.com/api/chat.postMessage"
	}
}

func applySourceDefaults(s *SourceConfig) {
	if s.Timeout == 0 {
		s.Timeout = 15 * time.Second
	}
	if s.UserAgent == "" {
		s.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if s.ReaderProxyURL == "" {
		s.ReaderProxyURL = "https://r.jina.ai"
	}
	if s.RateLimit.PerSecond == 0 {
		s.RateLimit.PerSecond = 2.0
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 4
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CheckInterval == 0 {
		s.CheckInterval = 4 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if cfg.Database.Name == "" {
		return errors.New("database.name is required")
	}
	if cfg.Database.User == "" {
		return errors.New("database.user is required")
	}
	if cfg.Slack.Enabled && cfg.Slack.BotToken == "" {
		return errors.New("slack.bot_token is required when slack is enabled")
	}
	if cfg.Monitoring.PriceTolerance < 0 {
		return errors.New("monitoring.price_tolerance must not be negative")
	}
	if cfg.Schedule.CheckInterval < time.Minute {
		return fmt.Errorf("schedule.check_interval %s is below the 1m minimum", cfg.Schedule.CheckInterval)
	}
	return nil
}
