// Package config holds cake's run-time settings: the handful of values
// that come from build-time ldflags, CLI flags, and environment variable
// overrides.
package config

import "os"

// AppConfig contains the base configuration fields required to run cake.
type AppConfig struct {
	Debug     bool   `long:"debug" env:"DEBUG" default:"false"`
	Version   string `long:"version" env:"VERSION" default:"unversioned"`
	Commit    string `long:"commit" env:"COMMIT"`
	BuildDate string `long:"build-date" env:"BUILD_DATE"`
	Name      string `long:"name" env:"NAME" default:"cake"`

	// LogLevel is one of logrus's level names (error, warn, info, debug,
	// trace); set from the CLI's "-l/--loglevel" flag.
	LogLevel string `long:"loglevel" env:"LOG_LEVEL" default:"info"`

	// DockerBin is the binary cake shells out to for image fetch/run/save.
	// It defaults to "docker" but can be pointed at "podman" or any other
	// compatible CLI.
	DockerBin string `long:"docker-bin" env:"CAKE_DOCKER_BIN" default:"docker"`
}

// NewAppConfig builds the app's configuration from build-time values plus
// whatever the CLI parsed for loglevel and debugging.
func NewAppConfig(version, commit, date string, debuggingFlag bool, logLevel string) *AppConfig {
	dockerBin := os.Getenv("CAKE_DOCKER_BIN")
	if dockerBin == "" {
		dockerBin = "docker"
	}

	return &AppConfig{
		Name:      "cake",
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Debug:     debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		LogLevel:  logLevel,
		DockerBin: dockerBin,
	}
}
