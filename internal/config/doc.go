// Package config loads and validates the spikemask TOML configuration.
package config
