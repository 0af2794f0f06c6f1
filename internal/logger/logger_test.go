// SPDX-License-Identifier: MIT

package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/campusnet/internal/logger"
)

func TestNew_Modes(t *testing.T) {
	l, err := logger.New("development", "")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = logger.New("prod", "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = logger.New("nop", "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
	logger.Sync(l)
	logger.Sync(nil)
}

func TestNew_Level(t *testing.T) {
	l, err := logger.New("development", "warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = logger.New("development", "loud")
	require.Error(t, err)
}

func TestNew_UnknownMode(t *testing.T) {
	_, err := logger.New("verbose", "")
	require.Error(t, err)
}
