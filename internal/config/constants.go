package config

// DefaultConfigPath is where Load looks for the YAML config when the -config
// flag is not given.
const DefaultConfigPath = "config.yml"

const (
	defaultPort            = 5000
	defaultAdminPrefix     = "divos"
	defaultMaxURLLength    = 2048
	defaultRetentionMonths = 12
	defaultSQLitePath      = "mappings.db"

	defaultDBPortMySQL    = 3306
	defaultDBPortPostgres = 5432
)
