// Package app wires together cake's configuration, logger and docker CLI
// wrapper into the one entrypoint main calls.
package app

import (
	"github.com/sirupsen/logrus"

	"github.com/sbchaos/cake/pkg/analyze"
	"github.com/sbchaos/cake/pkg/config"
	"github.com/sbchaos/cake/pkg/dockercli"
	"github.com/sbchaos/cake/pkg/log"
)

// App holds the dependencies a single cake run needs.
type App struct {
	Config *config.AppConfig
	Log    *logrus.Entry
	CLI    *dockercli.CLI
}

// NewApp bootstraps the logger and docker CLI wrapper from config.
func NewApp(cfg *config.AppConfig) *App {
	logger := log.NewLogger(cfg)
	return &App{
		Config: cfg,
		Log:    logger,
		CLI:    dockercli.New(logger, cfg.DockerBin),
	}
}

// Analyze resolves image and prints the view named by opts.
func (app *App) Analyze(image string, opts analyze.Options) error {
	return analyze.Run(app.Log, app.CLI, image, opts)
}
