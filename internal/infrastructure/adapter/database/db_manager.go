package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/repository"
)

// Manager owns the store connection and builds repositories on top of it
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	idGenerator  coreport.IDGenerator
	health       *HealthState
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, idGenerator coreport.IDGenerator, health *HealthState) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
		idGenerator:  idGenerator,
		health:       health,
	}
}

// Repositories groups the repositories built on the shared connection
type Repositories struct {
	Users         persistence.UserRepository
	Loans         persistence.LoanRepository
	Notifications persistence.NotificationRepository
	Settings      persistence.SettingsRepository
	Logs          persistence.LogRepository
}

// Connect opens the connection pool and makes a single connection attempt
// bounded by the connect timeout. The returned handle is usable even when the
// attempt fails; the error only reports that the store was unreachable.
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"target": m.config.Target(),
	})
	m.health.SetConnecting()

	gormDB, err := m.open()
	if err != nil {
		m.health.SetDisconnected(err)
		m.logger.Error("Failed to open database", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		m.health.SetDisconnected(err)
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	if m.config.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else if m.config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	}
	if m.config.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.db = gormDB

	if err := m.Ping(ctx); err != nil {
		m.logger.Error("Database unreachable, continuing without it", map[string]any{
			"error":  err.Error(),
			"target": m.config.Target(),
		})
		return gormDB, err
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":           m.config.Driver,
		"target":           m.config.Target(),
		"max_open_conns":   m.config.MaxOpenConns,
		"max_idle_conns":   m.config.MaxIdleConns,
		"query_timeout_ms": m.config.QueryTimeout.Milliseconds(),
	})
	return gormDB, nil
}

func (m *Manager) open() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:               NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
		NowFunc:              m.timeProvider.Now,
		DisableAutomaticPing: true,
		TranslateError:       true,
	}

	switch m.config.Driver {
	case DriverPostgres:
		gormConfig.PrepareStmt = true
		return gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
	case DriverSQLite:
		return gorm.Open(sqlite.Open(m.config.DSN()), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// Ping checks the store within the connect timeout and records the outcome
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		m.health.SetDisconnected(ErrNotConnected)
		return ErrNotConnected
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		m.health.SetDisconnected(err)
		return err
	}

	pingCtx, cancel := m.timeProvider.WithTimeout(ctx, m.config.ConnectTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		m.health.SetDisconnected(err)
		return err
	}

	m.health.SetConnected()
	return nil
}

// Bootstrap migrates the schema and seeds the default settings row
func (m *Manager) Bootstrap(ctx context.Context) error {
	if m.db == nil {
		return ErrNotConnected
	}

	if err := migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	if err := migration.CreateDefaultSettings(ctx, m.Repositories().Settings, m.logger); err != nil {
		return fmt.Errorf("seeding default settings: %w", err)
	}
	return nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Health returns the health state the manager reports into
func (m *Manager) Health() *HealthState {
	return m.health
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", nil)
	m.health.SetDisconnecting()

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	err = sqlDB.Close()
	m.health.SetDisconnected(nil)
	return err
}

// RepositoryOptions returns the collaborators shared by every repository
func (m *Manager) RepositoryOptions() repository.Options {
	return repository.Options{
		TimeProvider: m.timeProvider,
		IDGenerator:  m.idGenerator,
		Logger:       m.logger,
		QueryTimeout: m.config.QueryTimeout,
	}
}

// Repositories builds repositories on the shared connection
func (m *Manager) Repositories() Repositories {
	opts := m.RepositoryOptions()
	return Repositories{
		Users:         repository.NewUserRepository(m.db, opts),
		Loans:         repository.NewLoanRepository(m.db, opts),
		Notifications: repository.NewNotificationRepository(m.db, opts),
		Settings:      repository.NewSettingsRepository(m.db, opts),
		Logs:          repository.NewLogRepository(m.db, opts),
	}
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.RepositoryOptions())
}
