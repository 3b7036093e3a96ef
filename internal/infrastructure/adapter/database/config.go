package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/config"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver              string
	URL                 string
	Host                string
	Port                string
	Username            string
	Password            string
	Database            string
	SSLMode             string
	SQLitePath          string
	MaxOpenConns        int
	MaxIdleConns        int
	ConnMaxLifetime     time.Duration
	ConnMaxIdleTime     time.Duration
	ConnectTimeout      time.Duration
	QueryTimeout        time.Duration
	HealthCheckInterval time.Duration
	LogLevel            string
}

// FromAppConfig builds a database Config from the application config
func FromAppConfig(c config.DatabaseConfig) *Config {
	return &Config{
		Driver:              strings.ToLower(strings.TrimSpace(c.Driver)),
		URL:                 strings.TrimSpace(c.URL),
		Host:                c.Host,
		Port:                c.Port,
		Username:            c.Username,
		Password:            c.Password,
		Database:            c.Database,
		SSLMode:             c.SSLMode,
		SQLitePath:          c.SQLitePath,
		MaxOpenConns:        c.MaxOpenConns,
		MaxIdleConns:        c.MaxIdleConns,
		ConnMaxLifetime:     c.ConnMaxLifetime,
		ConnMaxIdleTime:     c.ConnMaxIdleTime,
		ConnectTimeout:      c.ConnectTimeout,
		QueryTimeout:        c.QueryTimeout,
		HealthCheckInterval: c.HealthCheckInterval,
		LogLevel:            c.LogLevel,
	}
}

// Validate checks if the configuration is valid. There are no credential
// defaults: postgres needs either a URL or a host, user and database name.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.URL == "" {
			if c.Host == "" {
				return errors.New("database url or host is required")
			}
			if c.Username == "" {
				return errors.New("database username is required")
			}
			if c.Database == "" {
				return errors.New("database name is required")
			}
		}
	case DriverSQLite:
		if c.SQLitePath == "" && c.URL == "" {
			return errors.New("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.SSLMode != "" {
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
			"allow":       true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	}

	if c.MaxOpenConns < 0 {
		return fmt.Errorf("max open connections must not be negative, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must not be negative, got: %d", c.MaxIdleConns)
	}
	if c.ConnectTimeout <= 0 {
		return errors.New("connect timeout must be positive")
	}
	if c.QueryTimeout < 0 {
		return errors.New("query timeout must not be negative")
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.sqliteDSN()
	}
	if c.URL != "" {
		return c.URL
	}

	parts := []string{
		"host=" + c.Host,
		"user=" + c.Username,
		"dbname=" + c.Database,
	}
	if c.Port != "" {
		parts = append(parts, "port="+c.Port)
	}
	if c.Password != "" {
		parts = append(parts, "password="+c.Password)
	}
	if c.SSLMode != "" {
		parts = append(parts, "sslmode="+c.SSLMode)
	}
	if secs := int(c.ConnectTimeout / time.Second); secs > 0 {
		parts = append(parts, fmt.Sprintf("connect_timeout=%d", secs))
	}
	return strings.Join(parts, " ")
}

// sqliteDSN appends a busy timeout so concurrent writers wait instead of
// failing with "database is locked"
func (c *Config) sqliteDSN() string {
	path := c.URL
	if path == "" {
		path = c.SQLitePath
	}
	if strings.Contains(path, "_busy_timeout") {
		return path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	busy := c.ConnectTimeout.Milliseconds()
	if busy <= 0 {
		busy = 5000
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d", path, sep, busy)
}

// Target describes the store for log lines without leaking credentials
func (c *Config) Target() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	if c.URL != "" {
		u, err := url.Parse(c.URL)
		if err != nil {
			return "postgres"
		}
		return u.Host + u.Path
	}
	return fmt.Sprintf("%s:%s/%s", c.Host, c.Port, c.Database)
}
