// =============================================================================
// Sales Data Cleaner - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. Everything the pipeline needs from the outside world is
// declared here: input/output locations, the conversion rate, CSV parsing
// settings, and archival behavior.
//
// CONFIGURATION FILE:
//   A single YAML file (config.yaml by default). Every field has a default,
//   so an empty or missing file still yields a runnable configuration that
//   matches the reference behavior (sales.csv -> clean_sales.json at 83.0).
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/sales-data-cleaner/internal/currency"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputPath is the sales export to clean. The extension selects the
	// reader: .xlsx files go through the spreadsheet reader, everything
	// else is treated as delimited text.
	// Default: "sales.csv"
	InputPath string `yaml:"input_path"`

	// OutputPath is where the cleaned JSON document is written.
	// Default: "clean_sales.json"
	OutputPath string `yaml:"output_path"`

	// Rate is the conversion rate applied to every price, expressed as
	// INR per USD. This is plain configuration, not mutable state: it is
	// read once and passed down as an argument.
	// Default: 83.0
	Rate float64 `yaml:"rate"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// CSV contains settings for parsing delimited input files.
	CSV CSVSettings `yaml:"csv"`

	// XLSX contains settings for parsing spreadsheet input files.
	XLSX XLSXSettings `yaml:"xlsx"`

	// Archive controls what happens to the input file after a
	// successful run.
	Archive ArchiveSettings `yaml:"archive"`

	// WarningsLogDir, when set, is a directory that receives a log file
	// listing every skipped row of the run. Warnings are always reported
	// on the console regardless of this setting.
	WarningsLogDir string `yaml:"warnings_log_dir"`
}

// CSVSettings contains settings for parsing delimited text files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields.
	// Common values: "," (comma), "|" (pipe), "\t" (tab).
	// The aliases "tab", "pipe" and "semicolon" are also accepted.
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRows is the number of leading rows to skip before the data
	// begins. The legacy export carries no header, so the default is
	// 0 and every non-empty row is treated as data. Real sales exports
	// often have one header row; set this to 1 for those.
	HeaderRows int `yaml:"header_rows"`
}

// XLSXSettings contains settings for parsing spreadsheet files.
type XLSXSettings struct {
	// Sheet is the worksheet to read. Empty selects the first sheet.
	Sheet string `yaml:"sheet"`
}

// ArchiveSettings controls archival of processed input files.
type ArchiveSettings struct {
	// Enabled turns archival on. When true, the input file is moved to
	// Dir after a successful (non-dry-run) run.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Dir is the archive directory.
	// Default: "./input_archive"
	Dir string `yaml:"dir"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults for any
// unset fields, and validates the result.
//
// A missing config file is not an error: the defaults describe a complete,
// runnable configuration. Any other read failure is surfaced.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Fall through to defaults.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputPath == "" {
		cfg.InputPath = "sales.csv"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "clean_sales.json"
	}
	if cfg.Rate == 0 {
		cfg.Rate = currency.DefaultRate
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.CSV.Delimiter == "" {
		cfg.CSV.Delimiter = ","
	}
	if cfg.Archive.Dir == "" {
		cfg.Archive.Dir = "./input_archive"
	}
}

// validate rejects configurations the pipeline cannot run with.
func validate(cfg *Config) error {
	if cfg.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %v", cfg.Rate)
	}
	if cfg.CSV.HeaderRows < 0 {
		return fmt.Errorf("csv.header_rows must not be negative, got %d", cfg.CSV.HeaderRows)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	return nil
}
