// Package config provides environment-based configuration for the CLI.
// It loads settings from environment variables with sensible defaults and
// validates them on startup to fail fast on misconfiguration.
//
// Dataset-specific cleaning rules are not configured here; those live in a
// ruleset file handled by the rules package.
package config

// Config holds the ambient application configuration.
type Config struct {
	Logging LoggingConfig
	Rules   RulesConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// RulesConfig holds ruleset file settings.
type RulesConfig struct {
	// Path is a default ruleset file used when no --rules flag is given.
	// Empty means the built-in default ruleset applies.
	Path string `env:"TABLEWASH_RULES"`
}
