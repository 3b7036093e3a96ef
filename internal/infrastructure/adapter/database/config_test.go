package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/config"
)

func validPostgresConfig() *Config {
	return &Config{
		Driver:         DriverPostgres,
		Host:           "db",
		Port:           "5432",
		Username:       "tracker",
		Password:       "secret",
		Database:       "loans",
		SSLMode:        "disable",
		ConnectTimeout: 5 * time.Second,
		QueryTimeout:   10 * time.Second,
		LogLevel:       "warn",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"url only", func(c *Config) { *c = Config{Driver: DriverPostgres, URL: "postgres://u@h/db", ConnectTimeout: time.Second, LogLevel: "warn"} }, ""},
		{"no host", func(c *Config) { c.Host = "" }, "database url or host is required"},
		{"no user", func(c *Config) { c.Username = "" }, "database username is required"},
		{"no name", func(c *Config) { c.Database = "" }, "database name is required"},
		{"bad driver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver: mysql"},
		{"bad ssl", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode: sometimes"},
		{"no connect timeout", func(c *Config) { c.ConnectTimeout = 0 }, "connect timeout must be positive"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level: loud"},
		{"sqlite without path", func(c *Config) { c.Driver = DriverSQLite }, "sqlite path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validPostgresConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	c := validPostgresConfig()
	assert.Equal(t, "host=db user=tracker dbname=loans port=5432 password=secret sslmode=disable connect_timeout=5", c.DSN())

	c.URL = "postgres://tracker:secret@db:5432/loans"
	assert.Equal(t, c.URL, c.DSN())
	assert.Equal(t, "db:5432/loans", c.Target())

	lite := &Config{Driver: DriverSQLite, SQLitePath: "data.db", ConnectTimeout: 3 * time.Second}
	assert.Equal(t, "data.db?_busy_timeout=3000", lite.DSN())

	lite.SQLitePath = "file:data.db?cache=shared"
	assert.Equal(t, "file:data.db?cache=shared&_busy_timeout=3000", lite.DSN())
}

func TestFromAppConfig(t *testing.T) {
	c := FromAppConfig(config.DatabaseConfig{
		Driver:       " SQLite ",
		SQLitePath:   "tracker.db",
		QueryTimeout: 10 * time.Second,
		LogLevel:     "warn",
	})

	assert.Equal(t, DriverSQLite, c.Driver)
	assert.Equal(t, "tracker.db", c.SQLitePath)
	assert.Equal(t, 10*time.Second, c.QueryTimeout)
}
