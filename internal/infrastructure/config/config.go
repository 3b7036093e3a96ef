package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Sync        SyncConfig     `mapstructure:"sync"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	BodyLimitBytes    int64         `mapstructure:"bodyLimitBytes"`
	StaticDir         string        `mapstructure:"staticDir"`
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver              string        `mapstructure:"driver"`
	URL                 string        `mapstructure:"url"`
	Host                string        `mapstructure:"host"`
	Port                string        `mapstructure:"port"`
	Username            string        `mapstructure:"username"`
	Password            string        `mapstructure:"password"`
	Database            string        `mapstructure:"database"`
	SSLMode             string        `mapstructure:"sslMode"`
	SQLitePath          string        `mapstructure:"sqlitePath"`
	MaxOpenConns        int           `mapstructure:"maxOpenConns"`
	MaxIdleConns        int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime     time.Duration `mapstructure:"connMaxLifetime"`     // minutes
	ConnMaxIdleTime     time.Duration `mapstructure:"connMaxIdleTime"`     // minutes
	ConnectTimeout      time.Duration `mapstructure:"connectTimeout"`      // seconds
	QueryTimeout        time.Duration `mapstructure:"queryTimeout"`        // seconds
	HealthCheckInterval time.Duration `mapstructure:"healthCheckInterval"` // seconds
	LogLevel            string        `mapstructure:"logLevel"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// SyncConfig contains read caps for the sync and audit endpoints
type SyncConfig struct {
	NotificationLimit int `mapstructure:"notificationLimit"`
	LogLimit          int `mapstructure:"logLimit"`
}
