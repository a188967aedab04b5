package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	return c.validateAnalysis()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateStorage() error {
	if c.Storage.RecordingPattern == "" {
		return errors.New("storage.recording_pattern must be set")
	}
	if strings.ContainsRune(c.Storage.RecordingPattern, '/') {
		return errors.New("storage.recording_pattern must be a bare filename glob")
	}
	if c.Storage.ConcurrentFile == "" {
		return errors.New("storage.concurrent_file must be set")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.LockTimeoutSeconds < 0 {
		return errors.New("analysis.lock_timeout_seconds must not be negative")
	}
	return nil
}
