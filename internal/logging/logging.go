package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"moodboard/internal/config"
)

// New builds the process logger. Production gets JSON output, everything else
// the human readable development encoder.
func New(env, level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", level)
	}

	zapCfg := zap.NewDevelopmentConfig()
	if env == config.EnvProduction {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = atomicLevel

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

// NewFromConfig is New driven by the loaded configuration.
func NewFromConfig(cfg *config.Config) (*zap.Logger, error) {
	return New(cfg.Env, cfg.LogLevel)
}

// Sugar exposes the key/value logger used across the service.
func Sugar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}
