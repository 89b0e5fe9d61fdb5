// Package log builds cake's single logrus entry, leveled from the CLI's
// "-l/--loglevel" flag and enriched with build metadata.
package log

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sbchaos/cake/pkg/config"
)

// NewLogger returns a logger that writes to stderr at the level named by
// config.LogLevel (falling back to info on an unrecognized name), with
// config.Debug forcing trace level regardless of what was asked for.
func NewLogger(cfg *config.AppConfig) *logrus.Entry {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	log.SetLevel(resolveLevel(cfg))

	return log.WithFields(logrus.Fields{
		"version": cfg.Version,
		"commit":  cfg.Commit,
	})
}

func resolveLevel(cfg *config.AppConfig) logrus.Level {
	if cfg.Debug {
		return logrus.TraceLevel
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
