// Package db opens the gorm database configured for lensfolio.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lensfolio/lensfolio/internal/config"
	"github.com/lensfolio/lensfolio/internal/db/dsn"
	"github.com/lensfolio/lensfolio/internal/db/models"
	"github.com/lensfolio/lensfolio/internal/logger/adapter/stdlogger"
)

// ErrUnknownEngine is returned for a GormEngine other than mysql, postgres or sqlite.
var ErrUnknownEngine = errors.New("unknown gorm engine")

const (
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg config.DB) (gorm.Dialector, error) {
	switch cfg.GormEngine {
	case EngineMySQL:
		return gormmysql.Open(dsn.MySQL(cfg)), nil
	case EnginePostgres:
		return gormpostgres.Open(dsn.Postgres(cfg)), nil
	case EngineSQLite, "":
		file := dsn.SQLite(cfg)
		if file != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil { //nolint:mnd
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}

		return sqlite.Open(file), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.GormEngine)
	}
}

// Open connects to the database and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DB)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if cfg.DevMode {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(stdlogger.New(), gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// every connection to an in-memory sqlite database sees its own database
	if isMemorySQLite(cfg.DB) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access connection pool: %w", err)
		}

		sqlDB.SetMaxOpenConns(1)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func isMemorySQLite(cfg config.DB) bool {
	return (cfg.GormEngine == EngineSQLite || cfg.GormEngine == "") && dsn.SQLite(cfg) == ":memory:"
}

// Migrate creates or updates the tables used by lensfolio.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Document{},
		&models.Session{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
