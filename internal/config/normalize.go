package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeStorage()
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = defaultLogDir
	}
	var err error
	if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeStorage() {
	c.Storage.RecordingPattern = strings.TrimSpace(c.Storage.RecordingPattern)
	if c.Storage.RecordingPattern == "" {
		c.Storage.RecordingPattern = defaultRecordingPattern
	}
	c.Storage.ConcurrentFile = strings.TrimSpace(c.Storage.ConcurrentFile)
	if c.Storage.ConcurrentFile == "" {
		c.Storage.ConcurrentFile = defaultConcurrentFile
	}
}
