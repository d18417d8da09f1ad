package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	accountentity "dividend_backend/internal/feature/account/domain/entity"
	authentity "dividend_backend/internal/feature/auth/domain/entity"
	companyentity "dividend_backend/internal/feature/company/domain/entity"
	currencyentity "dividend_backend/internal/feature/currency/domain/entity"
	dividendentity "dividend_backend/internal/feature/dividend/domain/entity"
)

const (
	connectTimeout    = 60 * time.Second
	pgUniqueViolation = "23505"
)

// retryInterval is a variable so tests can shorten it.
var retryInterval = 3 * time.Second

// DefaultCurrencies are inserted by Migrate when missing.
var DefaultCurrencies = []string{"USD", "EUR", "RUB"}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// GormConfig is shared by every connection so unique violations surface as gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// NewOpener returns the Opener for the configured driver.
func NewOpener(driver string) (Opener, error) {
	switch driver {
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), GormConfig())
		}, nil
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), GormConfig())
		}, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// OpenDB connects to the configured store and, when enabled, migrates it.
func OpenDB(cfg Config) (*gorm.DB, error) {
	opener, err := NewOpener(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), connectTimeout, opener)
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		// sqlite allows a single writer; serialise through one connection.
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	slog.Info("database ready", "driver", cfg.Driver)
	return db, nil
}

// Migrate creates or alters every table and seeds the reference currencies.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&currencyentity.Currency{},
		&accountentity.Account{},
		&companyentity.Company{},
		&dividendentity.Dividend{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	seed := make([]currencyentity.Currency, 0, len(DefaultCurrencies))
	for _, name := range DefaultCurrencies {
		seed = append(seed, currencyentity.Currency{Name: name})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed currencies: %w", err)
	}
	return nil
}

// IsDuplicateKey reports whether err is a unique constraint violation on any supported driver.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
