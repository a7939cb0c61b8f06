package config

// AppConfig holds runtime startup configuration. It is built once in Load and
// never mutated afterwards; handlers receive it by reference instead of
// reading the environment themselves.
type AppConfig struct {
	Port            int            `yaml:"port"`
	Env             string         `yaml:"env"` // "development" | "production"
	BaseURL         string         `yaml:"base_url"`
	AdminPrefix     string         `yaml:"admin_prefix"`
	AliasLength     int            `yaml:"alias_length"`
	MaxURLLength    int            `yaml:"max_url_length"`
	RetentionMonths int            `yaml:"retention_months"`
	LogDir          string         `yaml:"log_dir"`
	Database        DatabaseConfig `yaml:"database"`
}

// DatabaseConfig selects and parameterizes the storage backend. When neither
// a driver nor any connection detail is set, the embedded SQLite file is used.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // "sqlite" | "mysql" | "postgres"
	DSN      string `yaml:"dsn"`
	Path     string `yaml:"path"` // SQLite file path
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

func (a *AppConfig) IsDev() bool { return a.Env != "production" }
