// Package logging provides structured logging for easy2ha.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the entire application.
//
// # Features
//
//   - Colourised text output for terminals (human-readable)
//   - JSON output for machine consumption
//   - Optional plain-text mirror to a log file
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error, critical)
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via the LoggingConfig in config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warning, error, critical
//	  format: "text"     # text, json
//	  output: "stderr"   # stdout, stderr
//	  file:
//	    path: "easy2ha.log"
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("converting project", "input", "house.txa")
//	logger.Error("conversion failed", "error", err)
package logging
