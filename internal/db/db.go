package db

import (
	"errors"
	"fmt"

	"github.com/diewo77/salesreport/internal/config"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnknownDriver is returned for a driver other than sqlite or postgres.
var ErrUnknownDriver = errors.New("unknown database driver")

// Open connects to the record store described by cfg and checks it is reachable.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", config.DriverSQLite:
		log.WithField("path", cfg.Path).Debug("opening sqlite store")
		dialector = sqlite.Open(cfg.Path)
	case config.DriverPostgres:
		dsn := cfg.NormalizedDSN()
		if dsn == "" {
			return nil, errors.New("DATABASE_DSN is empty")
		}
		log.WithField("dsn", cfg.MaskedDSN()).Debug("opening postgres store")
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	return db, nil
}

// Init opens the store, ensures the sales table and seeds it when empty.
// The caller owns the returned handle and must Close it.
func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	if err := Seed(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
