// Package database opens the relational store behind a single GORM handle.
// The backend is chosen once at startup: the embedded SQLite file when no
// networked database is configured, MySQL or PostgreSQL otherwise. GORM's
// dialectors are the only place placeholder syntax differs; application code
// never formats SQL by hand.
package database

import (
	"fmt"

	"github.com/divoslabs/acorta/internal/config"
	"github.com/divoslabs/acorta/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured backend and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	dialector, err := resolveDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Duplicate-key violations must surface as gorm.ErrDuplicatedKey so
		// the create path can report a conflict instead of a generic 500.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return db, nil
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MappingModel{},
		&models.VisitModel{},
		&models.WaTemplateModel{},
	)
}

func resolveDialector(dbCfg config.DatabaseConfig) (gorm.Dialector, error) {
	dsn := dbCfg.DSNValue()
	switch dbCfg.Driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "mysql":
		return mysql.New(mysql.Config{DSN: dsn, DefaultStringSize: 191}), nil
	case "postgres":
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", dbCfg.Driver)
	}
}
