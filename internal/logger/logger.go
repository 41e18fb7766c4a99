// Package logger builds the zap logger shared by the binaries and carries
// request-scoped loggers through contexts.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelOff silences logging entirely.
const LevelOff = "off"

// NewLogger builds a logger for env: local (the default) writes colored
// console lines, dev plain console lines, prod JSON tagged with the app name.
// Everything goes to stderr; stdout belongs to the console report.
// level overrides the environment default.
func NewLogger(env, level string) (*zap.Logger, error) {
	if level == LevelOff {
		return zap.NewNop(), nil
	}

	cfg, err := configFor(env)
	if err != nil {
		return nil, err
	}
	if level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

func configFor(env string) (zap.Config, error) {
	switch env {
	case "", "local":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg, nil
	case "dev":
		// log files: no color codes, and DPanic must not crash a deployed binary
		cfg := zap.NewDevelopmentConfig()
		cfg.Development = false
		return cfg, nil
	case "prod":
		cfg := zap.NewProductionConfig()
		cfg.InitialFields = map[string]any{"app": "docsearch"}
		return cfg, nil
	default:
		return zap.Config{}, fmt.Errorf("unknown environment %q for logger", env)
	}
}
