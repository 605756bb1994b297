package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (USPS_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("user-id", os.Getenv("USPS_USER_ID"), &cfg.UserID)
	s.setString("service-url", os.Getenv("USPS_SERVICE_URL"), &cfg.ServiceURL)
	s.setString("log-level", os.Getenv("USPS_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("test", os.Getenv("USPS_TEST"), &cfg.Test)

	if err := s.setDuration("timeout", os.Getenv("USPS_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	return nil
}
