// SPDX-License-Identifier: MIT

// Package logger builds the zap logger used by the campusnet binaries.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Modes accepted by New.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeNop         = "nop"
)

// New returns a logger for mode at the given level ("" keeps the mode's
// default: debug for development, info for production).
//
// "dev"/"development" uses zap's console encoder, "prod"/"production" the JSON
// encoder, and "nop"/"off" discards everything.
func New(mode, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "nop", "off":
		return zap.NewNop(), nil
	case "prod", ModeProduction:
		cfg = zap.NewProductionConfig()
	case "", "dev", ModeDevelopment:
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("logger: unknown mode %q", mode)
	}
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return cfg.Build()
}

// Sync flushes l, ignoring the error stderr returns on some platforms.
func Sync(l *zap.Logger) {
	if l != nil {
		_ = l.Sync()
	}
}
