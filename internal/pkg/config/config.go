package config

import (
	"fmt"
	"os"

	"github.com/ymakhloufi/loancalc/internal/app/accrual"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Environment        string
	LogLevel           zapcore.Level
	NegativeSpanPolicy accrual.Policy
}

// Load reads LOANCALC_* environment variables, falling back to defaults for unset ones.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	env := getenv("LOANCALC_ENV")
	switch env {
	case "":
		env = EnvDevelopment
	case EnvDevelopment, EnvProduction:
	default:
		return nil, fmt.Errorf("unknown environment '%s'", env)
	}

	level := zapcore.WarnLevel
	if s := getenv("LOANCALC_LOG_LEVEL"); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("failed to parse log level: %w", err)
		}
	}

	policy := accrual.PolicyReject
	if s := getenv("LOANCALC_NEGATIVE_SPAN"); s != "" {
		p, err := accrual.ParsePolicy(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse LOANCALC_NEGATIVE_SPAN: %w", err)
		}
		policy = p
	}

	return &Config{
		Environment:        env,
		LogLevel:           level,
		NegativeSpanPolicy: policy,
	}, nil
}

// NewLogger builds the root logger. Output goes to stderr to keep stdout for the prompts.
func (c *Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if c.Environment == EnvProduction {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
