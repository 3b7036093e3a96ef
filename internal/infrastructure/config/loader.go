package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable the service reads
const EnvPrefix = "LT"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// A missing config file is not an error; defaults and environment apply.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v, env)
}

// LoadFromViper decodes configuration from an already populated viper instance
func LoadFromViper(v *viper.Viper, env string) (*Config, error) {
	setDefaults(v)
	return decode(v, env)
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.readTimeout", 30)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.bodyLimitBytes", 50<<20)
	v.SetDefault("server.staticDir", "")
	v.SetDefault("server.corsOrigins", []string{"*"})

	// No connection string or credentials default; they must come from config or env
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "loan-tracker.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)     // minutes
	v.SetDefault("database.connMaxIdleTime", 15)     // minutes
	v.SetDefault("database.connectTimeout", 5)       // seconds
	v.SetDefault("database.queryTimeout", 10)        // seconds
	v.SetDefault("database.healthCheckInterval", 30) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("sync.notificationLimit", 200)
	v.SetDefault("sync.logLimit", 100)
}

// getEnvironment determines the environment from LT_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes flat LT_* variables override config file values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"DATABASE_URL":       "database.url",
		"DB_DRIVER":          "database.driver",
		"DB_HOST":            "database.host",
		"DB_PORT":            "database.port",
		"DB_USERNAME":        "database.username",
		"DB_PASSWORD":        "database.password",
		"DB_NAME":            "database.database",
		"DB_SSL_MODE":        "database.sslMode",
		"DB_SQLITE_PATH":     "database.sqlitePath",
		"DB_LOG_LEVEL":       "database.logLevel",
		"SERVER_HOST":        "server.host",
		"SERVER_PORT":        "server.port",
		"STATIC_DIR":         "server.staticDir",
		"LOGGER_LEVEL":       "logger.level",
		"LOGGER_FORMAT":      "logger.format",
		"LOGGER_TIME_FORMAT": "logger.timeFormat",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"DB_MAX_OPEN_CONNS":                "database.maxOpenConns",
		"DB_MAX_IDLE_CONNS":                "database.maxIdleConns",
		"DB_CONN_MAX_LIFETIME_MINUTES":     "database.connMaxLifetime",
		"DB_CONNECT_TIMEOUT_SECONDS":       "database.connectTimeout",
		"DB_QUERY_TIMEOUT_SECONDS":         "database.queryTimeout",
		"DB_HEALTH_CHECK_INTERVAL_SECONDS": "database.healthCheckInterval",
		"BODY_LIMIT_BYTES":                 "server.bodyLimitBytes",
		"SYNC_NOTIFICATION_LIMIT":          "sync.notificationLimit",
		"SYNC_LOG_LIMIT":                   "sync.logLimit",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(EnvPrefix+"_"+env, 0); value > 0 {
			v.Set(key, value)
		}
	}

	if origins := os.Getenv(EnvPrefix + "_CORS_ORIGINS"); origins != "" {
		v.Set("server.corsOrigins", strings.Split(origins, ","))
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Database.ConnectTimeout = time.Duration(config.Database.ConnectTimeout) * time.Second
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.HealthCheckInterval = time.Duration(config.Database.HealthCheckInterval) * time.Second
}
