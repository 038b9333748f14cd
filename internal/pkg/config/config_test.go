package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymakhloufi/loancalc/internal/app/accrual"
	"go.uber.org/zap/zapcore"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
	assert.Equal(t, accrual.PolicyReject, cfg.NegativeSpanPolicy)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(envOf(map[string]string{
		"LOANCALC_ENV":           "production",
		"LOANCALC_LOG_LEVEL":     "debug",
		"LOANCALC_NEGATIVE_SPAN": "clamp",
	}))
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, accrual.PolicyClamp, cfg.NegativeSpanPolicy)

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestLoad_Invalid(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"environment": {"LOANCALC_ENV": "staging"},
		"log level":   {"LOANCALC_LOG_LEVEL": "loud"},
		"policy":      {"LOANCALC_NEGATIVE_SPAN": "ignore"},
	} {
		_, err := load(envOf(vars))
		assert.Error(t, err, name)
	}
}
