// Package config provides application configuration loading from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Duplicate pull request scopes.
const (
	// ScopeSource rejects a second open request for the same range from the same source project.
	ScopeSource = "source"
	// ScopeSourceTarget additionally keys duplicates on the target project.
	ScopeSourceTarget = "source_target"
)

// Config holds all application configuration.
type Config struct {
	Logging      LoggingConfig     `mapstructure:"logging"`
	Server       ServerConfig      `mapstructure:"server"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Storage      StorageConfig     `mapstructure:"storage"`
	PullRequests PullRequestConfig `mapstructure:"pull_requests"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains connection settings for either backend.
// Path is only used by sqlite, the remaining fields only by postgres.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// StorageConfig lists the folders holding bare repositories.
// DocsFolder and TicketsFolder are optional; an empty value disables that area.
type StorageConfig struct {
	GitFolder     string `mapstructure:"git_folder"`
	ForkFolder    string `mapstructure:"fork_folder"`
	DocsFolder    string `mapstructure:"docs_folder"`
	TicketsFolder string `mapstructure:"tickets_folder"`
}

// PullRequestConfig tunes the pull request engine.
type PullRequestConfig struct {
	DuplicateScope string `mapstructure:"duplicate_scope"`
}

// Load reads configuration from a .env file, if present, and the environment.
// Every key can be overridden by SPECHUB_<SECTION>_<KEY>, e.g. SPECHUB_DATABASE_DRIVER.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("spechub")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	for _, key := range v.AllKeys() {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "spechub.sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "spechub")
	v.SetDefault("database.password", "")
	v.SetDefault("database.db_name", "spechub")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("storage.git_folder", "repos")
	v.SetDefault("storage.fork_folder", "forks")
	v.SetDefault("storage.docs_folder", "docs")
	v.SetDefault("storage.tickets_folder", "tickets")

	v.SetDefault("pull_requests.duplicate_scope", ScopeSource)
}

// Validate ensures required fields are present and enumerations are known.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return errors.New("server.port is required")
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("database.path is required for sqlite")
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
			return errors.New("database host, user and db_name are required for postgres")
		}
	default:
		return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
	}

	if c.Storage.GitFolder == "" || c.Storage.ForkFolder == "" {
		return errors.New("storage.git_folder and storage.fork_folder are required")
	}

	switch c.PullRequests.DuplicateScope {
	case ScopeSource, ScopeSourceTarget:
	default:
		return fmt.Errorf("unknown pull_requests.duplicate_scope %q", c.PullRequests.DuplicateScope)
	}

	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN returns the driver specific connection string.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", c.Path)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
