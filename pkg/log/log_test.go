package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/sbchaos/cake/pkg/config"
)

// TestNewLoggerUsesConfiguredLevel is a function.
func TestNewLoggerUsesConfiguredLevel(t *testing.T) {
	cfg := &config.AppConfig{LogLevel: "warn"}

	entry := NewLogger(cfg)

	assert.Equal(t, logrus.WarnLevel, entry.Logger.GetLevel())
}

// TestNewLoggerDebugForcesTrace is a function.
func TestNewLoggerDebugForcesTrace(t *testing.T) {
	cfg := &config.AppConfig{LogLevel: "error", Debug: true}

	entry := NewLogger(cfg)

	assert.Equal(t, logrus.TraceLevel, entry.Logger.GetLevel())
}

// TestNewLoggerFallsBackToInfoOnBadLevel is a function.
func TestNewLoggerFallsBackToInfoOnBadLevel(t *testing.T) {
	cfg := &config.AppConfig{LogLevel: "not-a-level"}

	entry := NewLogger(cfg)

	assert.Equal(t, logrus.InfoLevel, entry.Logger.GetLevel())
}
