package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/uspsship/pkg/usps"
)

// DefaultServiceURL is the USPS Web Tools endpoint.
const DefaultServiceURL = usps.DefaultBaseURL

// Config holds CLI configuration for the usps command.
type Config struct {
	UserID string
	Test   bool

	ServiceURL  string
	HTTPTimeout time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ServiceURL:  DefaultServiceURL,
		HTTPTimeout: 30 * time.Second,
		LogLevel:    "info",
	}
}

// Validate checks the configuration for errors and normalizes values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("user-id is required (flag, USPS_USER_ID or config file)")
	}

	if c.ServiceURL == "" {
		c.ServiceURL = DefaultServiceURL
	}
	c.ServiceURL = strings.TrimRight(c.ServiceURL, "/")

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}

	return nil
}

// ClientConfig converts the CLI configuration into a usps.Config.
func (c Config) ClientConfig() usps.Config {
	return usps.Config{
		UserID:  c.UserID,
		Test:    c.Test,
		BaseURL: c.ServiceURL,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses an environment value. "true" and "1" are true,
// anything else is false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
