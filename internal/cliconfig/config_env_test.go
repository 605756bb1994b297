package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"USPS_USER_ID":      "env-user",
				"USPS_TEST":         "true",
				"USPS_SERVICE_URL":  "http://env.example.com",
				"USPS_HTTP_TIMEOUT": "1m",
				"USPS_LOG_LEVEL":    "error",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				UserID:      "env-user",
				Test:        true,
				ServiceURL:  "http://env.example.com",
				HTTPTimeout: time.Minute,
				LogLevel:    "error",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"USPS_USER_ID": "env-user",
				"USPS_TEST":    "1",
			},
			changed: map[string]bool{"user-id": true},
			initial: Config{UserID: "flag-user"},
			expected: Config{
				UserID: "flag-user",
				Test:   true,
			},
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"USPS_TEST": "false",
			},
			changed:  map[string]bool{},
			initial:  Config{Test: true},
			expected: Config{Test: false},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"USPS_HTTP_TIMEOUT": "not-a-duration",
			},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	trueVal := true

	fileConf := FileConfig{
		UserID:   "file-user",
		LogLevel: "debug",
		Test:     &trueVal,
	}

	t.Setenv("USPS_USER_ID", "env-user")
	t.Setenv("USPS_LOG_LEVEL", "warn")
	t.Setenv("USPS_SERVICE_URL", "http://env.example.com")

	changed := map[string]bool{
		"user-id": true,
	}

	cfg := DefaultConfig()
	cfg.UserID = "cli-user"

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.UserID != "cli-user" {
		t.Errorf("UserID = %v, want cli-user (CLI should win)", cfg.UserID)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn (env should override file)", cfg.LogLevel)
	}
	if cfg.ServiceURL != "http://env.example.com" {
		t.Errorf("ServiceURL = %v, want http://env.example.com (env should set)", cfg.ServiceURL)
	}
	if !cfg.Test {
		t.Errorf("Test = false, want true (file should set)")
	}
}
