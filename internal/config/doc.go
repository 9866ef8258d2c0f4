// Package config defines the configuration structure for taskpool.
//
// Configuration is organized into logical sections (Server, Pool) and uses
// code generation via optgen to create functional option helpers. Defaults
// are declared with `default` struct tags and applied by creasty/defaults.
//
// The generated code provides, for every section:
//   - NewXWithOptions / NewXWithOptionsAndDefaults - Constructors
//   - WithField() - One option per field
//   - ToOption() - Copies a section into an option
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// Sections are tagged `debugmap:"visible-format"` on Configuration so they
// are logged in their formatted form rather than as "(value)".
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Pool           - Worker pool settings
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬──────────────────┬────────────────────────────────────────┐
//	│ Field            │ Default          │ Description                            │
//	├──────────────────┼──────────────────┼────────────────────────────────────────┤
//	│ Address          │ "127.0.0.1:5000" │ Listen address                         │
//	│ Mode             │ "dev"            │ Server mode: "prod" or "dev"           │
//	│ StaticsFolder    │ "static"         │ Folder holding hello.html and 404.html │
//	│ SleepDuration    │ 5s               │ Delay of the /sleep route              │
//	│ BindRetries      │ 5                │ Attempts to bind the listen address    │
//	└──────────────────┴──────────────────┴────────────────────────────────────────┘
//
// # Pool Configuration
//
//	┌───────┬─────────┬────────────────────────────────────────┐
//	│ Field │ Default │ Description                            │
//	├───────┼─────────┼────────────────────────────────────────┤
//	│ Size  │ 8       │ Number of workers, must be > 0         │
//	│ Name  │ "http"  │ Pool name attached to events/metrics   │
//	└───────┴─────────┴────────────────────────────────────────┘
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithPool(*config.NewPoolWithOptionsAndDefaults(config.WithSize(4))),
//	    config.WithLogLevel("debug"),
//	)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
