package config

import (
	"strings"
	"testing"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	if cfg.Defaults.Currency != "USD" {
		t.Errorf("expected default currency USD, got %s", cfg.Defaults.Currency)
	}
	if cfg.Database.Path != "" {
		t.Errorf("expected empty database path, got %s", cfg.Database.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "json format and debug level",
			mutate: func(c *Config) { c.Log.Format = "json"; c.Log.Level = "debug" },
		},
		{
			name:   "level is case insensitive",
			mutate: func(c *Config) { c.Log.Level = "INFO" },
		},
		{
			name:        "unknown level",
			mutate:      func(c *Config) { c.Log.Level = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "unknown format",
			mutate:      func(c *Config) { c.Log.Format = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
		{
			name:        "bad currency",
			mutate:      func(c *Config) { c.Defaults.Currency = "EURO" },
			wantErr:     true,
			errorString: "invalid default currency 'EURO'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateReportsAllProblems(t *testing.T) {
	cfg := NewDefault()
	cfg.Log.Level = "loud"
	cfg.Defaults.Currency = "1"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "log level") || !strings.Contains(err.Error(), "currency") {
		t.Fatalf("expected both problems reported, got %q", err.Error())
	}
}
