// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctmc/internal/config"
)

// t.Setenv forbids t.Parallel.
func TestFromEnv(t *testing.T) {
	require.Equal(t, config.Default(), config.FromEnv())

	t.Setenv(config.EnvDebug, "true")
	t.Setenv(config.EnvHTTPAddr, "127.0.0.1:9000")
	t.Setenv(config.EnvWorkers, "4")
	t.Setenv(config.EnvPrecision, "6")
	t.Setenv(config.EnvMaxStates, "20")
	require.Equal(t, config.Config{
		Debug:     true,
		HTTPAddr:  "127.0.0.1:9000",
		Workers:   4,
		Precision: 6,
		MaxStates: 20,
	}, config.FromEnv())
}

func TestFromEnv_Malformed(t *testing.T) {
	t.Setenv(config.EnvDebug, "yes")
	t.Setenv(config.EnvWorkers, "0")
	t.Setenv(config.EnvPrecision, "many")
	t.Setenv(config.EnvMaxStates, "1000")
	require.Equal(t, config.Default(), config.FromEnv())
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CTMC_TEST_FLOAT", "2.5")
	t.Setenv("CTMC_TEST_BAD", "x")
	require.InDelta(t, 2.5, config.GetEnvFloat("CTMC_TEST_FLOAT", 1), 0)
	require.InDelta(t, 1.0, config.GetEnvFloat("CTMC_TEST_BAD", 1), 0)
	require.Equal(t, 7, config.GetEnvInt("CTMC_TEST_BAD", 7))
	require.Equal(t, "x", config.GetEnv("CTMC_TEST_BAD"))
	require.Empty(t, config.GetEnv("CTMC_TEST_UNSET"))
	require.Equal(t, "d", config.GetEnvString("CTMC_TEST_UNSET", "d"))
}
