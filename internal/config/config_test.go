package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")
	os.Unsetenv("TABLEWASH_RULES")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
	if cfg.Rules.Path != "" {
		t.Errorf("Rules.Path = %q, want empty", cfg.Rules.Path)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("TABLEWASH_RULES", "/etc/tablewash/rules.yaml")
	defer func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("LOG_FORMAT")
		os.Unsetenv("TABLEWASH_RULES")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
	if cfg.Rules.Path != "/etc/tablewash/rules.yaml" {
		t.Errorf("Rules.Path = %q, want %q", cfg.Rules.Path, "/etc/tablewash/rules.yaml")
	}
}

func TestLoad_InvalidLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "verbose")
	defer os.Unsetenv("LOG_LEVEL")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want validation failure")
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	os.Setenv("LOG_FORMAT", "xml")
	defer os.Unsetenv("LOG_FORMAT")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want validation failure")
	}
}
