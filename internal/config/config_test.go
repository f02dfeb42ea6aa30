package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid memory backend config",
			config: Config{
				Port:            "8081",
				RecordBackend:   "memory",
				UpstreamTimeout: 15 * time.Second,
				SQLiteDBPath:    "./test.db",
			},
			wantErr: false,
		},
		{
			name: "valid nessie backend config",
			config: Config{
				Port:            "8081",
				RecordBackend:   "nessie",
				NessieBaseURL:   "http://api.nessieisreal.com",
				NessieAPIKey:    "abc123",
				UpstreamTimeout: 15 * time.Second,
				SQLiteDBPath:    "./test.db",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:            "abc",
				RecordBackend:   "memory",
				UpstreamTimeout: 15 * time.Second,
				SQLiteDBPath:    "./test.db",
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:            "70000",
				RecordBackend:   "memory",
				UpstreamTimeout: 15 * time.Second,
				SQLiteDBPath:    "./test.db",
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid record backend",
			config: Config{
				Port:            "8080",
				RecordBackend:   "invalid",
				UpstreamTimeout: 15 * time.Second,
				SQLiteDBPath:    "./test.db",
			},
			wantErr:     true,
			errorString: "invalid record backend 'invalid': must be one of [memory nessie]",
		},
		{
			name: "nessie backend missing api key",
			config: Config{
				Port:            "8080",
				RecordBackend:   "nessie",
				NessieBaseURL:   "http://api.nessieisreal.com",
				UpstreamTimeout: 15 * time.Second,
				SQLiteDBPath:    "./test.db",
			},
			wantErr:     true,
			errorString: "NESSIE_API_KEY is required when using nessie backend",
		},
		{
			name: "upstream timeout too small",
			config: Config{
				Port:            "8080",
				RecordBackend:   "memory",
				UpstreamTimeout: 100 * time.Millisecond,
				SQLiteDBPath:    "./test.db",
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "missing sqlite path",
			config: Config{
				Port:            "8080",
				RecordBackend:   "memory",
				UpstreamTimeout: 15 * time.Second,
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error = %q, want substring %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "RECORD_BACKEND", "NESSIE_BASE_URL", "NESSIE_API_KEY", "UPSTREAM_TIMEOUT", "SQLITE_DB_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want 8081", cfg.Port)
	}
	if cfg.RecordBackend != "memory" {
		t.Errorf("RecordBackend = %q, want memory", cfg.RecordBackend)
	}
	if cfg.NessieBaseURL != "http://api.nessieisreal.com" {
		t.Errorf("NessieBaseURL = %q", cfg.NessieBaseURL)
	}
	if cfg.UpstreamTimeout != 15*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 15s", cfg.UpstreamTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RECORD_BACKEND", "nessie")
	t.Setenv("NESSIE_API_KEY", "k")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.RecordBackend != "nessie" {
		t.Errorf("RecordBackend = %q, want nessie", cfg.RecordBackend)
	}
	if cfg.NessieAPIKey != "k" {
		t.Errorf("NessieAPIKey = %q, want k", cfg.NessieAPIKey)
	}
	if cfg.UpstreamTimeout != 5*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 5s", cfg.UpstreamTimeout)
	}
}
