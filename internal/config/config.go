// SPDX-License-Identifier: MIT

// Package config reads process configuration from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/ctmc/internal/logger"
)

// Environment keys.
const (
	EnvDebug            = "CTMC_LOG_DEBUG"
	EnvHTTPAddr         = "CTMC_HTTP_ADDR"
	EnvWorkers          = "CTMC_WORKERS"
	EnvPrecision        = "CTMC_PRECISION"
	EnvMaxStates        = "CTMC_MAX_STATES"
)

// Config is the effective runtime configuration. Command-line flags override it.
type Config struct {
	Debug    bool
	HTTPAddr string
	Workers  int

	// Precision overrides the display precision of loaded models; -1 keeps theirs.
	Precision int

	MaxStates int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HTTPAddr:  ":8080",
		Workers:   1,
		Precision: -1,
		MaxStates: 100,
	}
}

// LoadEnv loads .env from the working directory when present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

// FromEnv overlays the environment on Default. Malformed values keep the default,
// as do out-of-range ones (Workers < 1, Precision outside -1..15, MaxStates
// outside 2..100).
func FromEnv() Config {
	d := Default()
	c := Config{
		Debug:     GetEnvBool(EnvDebug, d.Debug),
		HTTPAddr:  GetEnvString(EnvHTTPAddr, d.HTTPAddr),
		Workers:   GetEnvInt(EnvWorkers, d.Workers),
		Precision: GetEnvInt(EnvPrecision, d.Precision),
		MaxStates: GetEnvInt(EnvMaxStates, d.MaxStates),
	}
	if c.Workers < 1 {
		c.Workers = d.Workers
	}
	if c.MaxStates < 2 || c.MaxStates > d.MaxStates {
		c.MaxStates = d.MaxStates
	}
	if c.Precision < -1 || c.Precision > 15 {
		c.Precision = d.Precision
	}

	return c
}

// GetEnv returns the value of key or "".
func GetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return ""
	}

	return value
}

// GetEnvString returns the value of key or defaultValue when unset.
func GetEnvString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	return value
}

// GetEnvInt parses key as a base-10 integer, falling back to defaultValue.
func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return n
}

// GetEnvFloat parses key as a float64, falling back to defaultValue.
func GetEnvFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return f
}

// GetEnvBool accepts exactly "true" or "false"; anything else yields defaultValue.
func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if value == "true" || value == "false" {
		return value == "true"
	}

	return defaultValue
}
