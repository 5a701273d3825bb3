// Package contract holds the validated runtime configuration and shared
// helpers used across commands.
package contract

import (
	"fmt"
	"strings"

	"github.com/lumenkit/kbscore/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultMinScore    = 70
)

// Config holds the runtime configuration for a scoring run.
// This struct remains the "final, validated" config.
type Config struct {
	SnapshotPath string
	Vertical     schema.Vertical
	ResultLimit  int
	Precision    int
	Output       schema.OutputMode
	OutputFile   string
	Width        int // Terminal width override (0 = auto-detect)
	UseColors    bool

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext
	Persist        bool

	// Check-gate thresholds, only read by the check command.
	MinTotalScore    float64
	MinCategoryScore float64
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SnapshotPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Vertical       string `mapstructure:"vertical"`
	Limit          int    `mapstructure:"limit"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Fields from scoreCmd.Flags() ---
	Persist bool `mapstructure:"persist"`

	// --- Fields from checkCmd.Flags() ---
	MinScore         float64 `mapstructure:"min-score"`
	MinCategoryScore float64 `mapstructure:"min-category-score"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.SnapshotPath = input.SnapshotPathStr
	cfg.Vertical = schema.Vertical(strings.TrimSpace(strings.ToLower(input.Vertical)))
	if cfg.Vertical == "" {
		cfg.Vertical = schema.VerticalGeneric
	}

	if input.Limit < 1 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxResultLimit)
	}
	cfg.ResultLimit = input.Limit

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 2 {
		cfg.Precision = 2
	}

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %s. Must be text, json, csv, or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative")
	}
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.UseColors = useColors

	backend := schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend: %s. Must be sqlite, mysql, postgresql, or none", input.StoreBackend)
	}
	cfg.StoreBackend = backend
	if err := ValidateDatabaseConnectionString(backend, input.StoreDBConnect); err != nil {
		return err
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	cfg.Persist = input.Persist

	cfg.MinTotalScore = input.MinScore
	cfg.MinCategoryScore = input.MinCategoryScore
	if cfg.MinTotalScore < 0 || cfg.MinTotalScore > 100 {
		return fmt.Errorf("min-score must be between 0 and 100")
	}
	if cfg.MinCategoryScore < 0 || cfg.MinCategoryScore > 100 {
		return fmt.Errorf("min-category-score must be between 0 and 100")
	}

	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("invalid MySQL connection string. Expected format: user:password@tcp(host:port)/dbname")
		}
		return nil
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("invalid PostgreSQL connection string. Expected key=value pairs or a postgres:// URL")
		}
		return nil
	default:
		return fmt.Errorf("unsupported store backend: %s", backend)
	}
}
