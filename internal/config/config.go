// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/storefront/internal/credentials"
)

// Config is the top-level application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Marketplace MarketplaceConfig `yaml:"marketplace"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
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

// MarketplaceConfig defines the MercadoLibre application credentials and API
// endpoints. ClientID and ClientSecret may be empty at load time; operations
// that need them fail with a configuration error instead.
type MarketplaceConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`

	// AccessToken and RefreshToken seed the credential store until the first
	// refresh persists a rotated pair.
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`

	APIURL            string          `yaml:"api_url"`
	TokenURL          string          `yaml:"token_url"`
	Timeout           time.Duration   `yaml:"timeout"`
	KeepaliveInterval time.Duration   `yaml:"keepalive_interval"` // 0 disables
	RateLimit         RateLimitConfig `yaml:"rate_limit"`
}

// BootstrapCredentials returns the configured tokens keyed for the credential
// store. Empty values are omitted.
func (m *MarketplaceConfig) BootstrapCredentials() map[credentials.Key]string {
	out := make(map[credentials.Key]string, 2)
	if m.AccessToken != "" {
		out[credentials.AccessToken] = m.AccessToken
	}
	if m.RefreshToken != "" {
		out[credentials.RefreshToken] = m.RefreshToken
	}
	return out
}

// RateLimitConfig defines outbound marketplace rate limiting.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// CatalogConfig defines product listing page sizes.
type CatalogConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

// TelemetryConfig defines OpenTelemetry export. An empty endpoint disables
// export and leaves the global no-op providers in place.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
}

// Enabled reports whether spans and metrics are exported.
func (t *TelemetryConfig) Enabled() bool {
	return t.OTLPEndpoint != ""
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
	applyMarketplaceDefaults(&cfg.Marketplace)
	applyCatalogDefaults(&cfg.Catalog)
	applyTelemetryDefaults(&cfg.Telemetry)
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

func applyMarketplaceDefaults(m *MarketplaceConfig) {
	if m.APIURL == "" {
		m.APIURL = "https://api.mercadolibre.com"
	}
	if m.TokenURL == "" {
		m.TokenURL = "https://api.mercadolibre.com/oauth/token"
	}
	if m.Timeout == 0 {
		m.Timeout = 8 * time.Second
	}
	if m.RateLimit.PerSecond == 0 {
		m.RateLimit.PerSecond = 10
	}
	if m.RateLimit.Burst == 0 {
		m.RateLimit.Burst = 20
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.DefaultPageSize == 0 {
		c.DefaultPageSize = 12
	}
	if c.MaxPageSize == 0 {
		c.MaxPageSize = 100
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "storefront"
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
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	m := cfg.Marketplace
	if m.Timeout < 0 {
		errs = append(errs, errors.New("marketplace.timeout must not be negative"))
	}
	if m.KeepaliveInterval < 0 {
		errs = append(errs, errors.New("marketplace.keepalive_interval must not be negative"))
	}
	if m.KeepaliveInterval > 0 && m.KeepaliveInterval < time.Minute {
		errs = append(errs, fmt.Errorf(
			"marketplace.keepalive_interval must be at least 1m (got %s)", m.KeepaliveInterval,
		))
	}
	if m.RateLimit.PerSecond < 0 || m.RateLimit.Burst < 0 {
		errs = append(errs, errors.New("marketplace.rate_limit values must not be negative"))
	}

	c := cfg.Catalog
	if c.DefaultPageSize < 0 || c.MaxPageSize < 0 {
		errs = append(errs, errors.New("catalog page sizes must not be negative"))
	} else if c.DefaultPageSize > c.MaxPageSize {
		errs = append(errs, fmt.Errorf(
			"catalog.default_page_size (%d) must not exceed catalog.max_page_size (%d)",
			c.DefaultPageSize, c.MaxPageSize,
		))
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json (got %q)", cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}
