// Package config handles loading and validating easy2ha configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// The converter runs fine without a config file; Default() covers the
// common case and a file is only needed to change logging or output
// behaviour persistently.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Logging.Level)
package config
