// Package config loads the immutable startup configuration: an optional YAML
// file, overridden by environment variables (a .env file is honored too).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/divoslabs/acorta/internal/pkg/alias"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load builds the AppConfig from the YAML file at path (missing file is fine
// unless the path was given explicitly) plus environment overrides.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultConfigPath:
		// run on env vars and defaults alone
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if cfg.AliasLength > alias.MaxLength {
		return nil, fmt.Errorf("alias_length %d exceeds maximum %d", cfg.AliasLength, alias.MaxLength)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	setString(&cfg.Env, "APP_ENV")
	setInt(&cfg.Port, "PORT")
	setString(&cfg.BaseURL, "BASE_URL")
	setString(&cfg.AdminPrefix, "ADMIN_PREFIX")
	setInt(&cfg.AliasLength, "ALIAS_LENGTH")
	setInt(&cfg.MaxURLLength, "MAX_URL_LENGTH")
	setInt(&cfg.RetentionMonths, "RETENTION_MONTHS")
	setString(&cfg.LogDir, "LOG_DIR")

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.DSN, "DB_DSN")
	setString(&cfg.Database.Path, "SQLITE_PATH")
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.AdminPrefix == "" {
		cfg.AdminPrefix = defaultAdminPrefix
	}
	cfg.AdminPrefix = strings.Trim(cfg.AdminPrefix, "/")
	if cfg.AliasLength == 0 {
		cfg.AliasLength = alias.DefaultLength
	}
	if cfg.MaxURLLength == 0 {
		cfg.MaxURLLength = defaultMaxURLLength
	}
	if cfg.RetentionMonths == 0 {
		cfg.RetentionMonths = defaultRetentionMonths
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = detectDriver(cfg.Database)
	}
	if cfg.Database.Driver == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = defaultSQLitePath
	}
}

// detectDriver picks the backend when no driver was named: a DSN implies the
// networked store it was written for, connection parts imply MySQL, and an
// unset database block falls back to the embedded SQLite file.
func detectDriver(db DatabaseConfig) string {
	dsn := strings.TrimSpace(db.DSN)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return "postgres"
	case dsn != "":
		return "mysql"
	case db.Host != "":
		return "mysql"
	default:
		return "sqlite"
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}
