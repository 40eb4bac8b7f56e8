package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for easy2ha.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string            `yaml:"level"`
	Format string            `yaml:"format"`
	Output string            `yaml:"output"`
	File   FileLoggingConfig `yaml:"file"`
}

// FileLoggingConfig contains file-based logging settings. When Path is set,
// log records are mirrored to the file in addition to the console.
type FileLoggingConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig contains settings for the generated configuration document.
type OutputConfig struct {
	// SortEntities orders entities alphabetically within each platform
	// section instead of keeping project encounter order.
	SortEntities bool `yaml:"sort_entities"`
}

// validLevels are the accepted logging levels. "warn" and "warning" are
// interchangeable; "critical" is accepted for compatibility and maps to
// the error level.
var validLevels = map[string]bool{
	"debug":    true,
	"info":     true,
	"warn":     true,
	"warning":  true,
	"error":    true,
	"critical": true,
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: EASY2HA_SECTION_KEY
// For example: EASY2HA_LOGGING_LEVEL, EASY2HA_OUTPUT_SORT_ENTITIES
//
// Parameters:
//   - path: Path to the YAML configuration file. An empty path skips the
//     file layer; defaults plus environment overrides are a complete
//     configuration on their own.
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Read and parse YAML file
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults. It is also the
// configuration used when no config file is given on the command line.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: EASY2HA_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Logging
	if v := os.Getenv("EASY2HA_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("EASY2HA_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("EASY2HA_LOGGING_OUTPUT"); v != "" {
		cfg.Logging.Output = v
	}
	if v := os.Getenv("EASY2HA_LOGGING_FILE"); v != "" {
		cfg.Logging.File.Path = v
	}

	// Output
	if v := os.Getenv("EASY2HA_OUTPUT_SORT_ENTITIES"); v != "" {
		if sort, err := strconv.ParseBool(v); err == nil {
			cfg.Output.SortEntities = sort
		}
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of debug, info, warning, error, critical", c.Logging.Level))
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q must be text or json", c.Logging.Format))
	}

	switch c.Logging.Output {
	case "stdout", "stderr":
	default:
		errs = append(errs, fmt.Sprintf("logging.output %q must be stdout or stderr", c.Logging.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
