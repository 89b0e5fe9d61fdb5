package main

import (
	"fmt"
	"log"
	"runtime"
	"runtime/debug"

	"github.com/integrii/flaggy"

	"github.com/sbchaos/cake/pkg/analyze"
	"github.com/sbchaos/cake/pkg/app"
	"github.com/sbchaos/cake/pkg/apperrors"
	"github.com/sbchaos/cake/pkg/config"
	"github.com/sbchaos/cake/pkg/utils"
)

const defaultVersion = "unversioned"

var (
	commit  string
	version = defaultVersion
	date    string

	imageRef     string
	showPackages bool
	showTree     bool
	logLevel     = "info"
	debuggingFlag bool
)

func main() {
	updateBuildInfo()

	info := fmt.Sprintf(
		"%s\nDate: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("cake")
	flaggy.SetDescription("Find wasted space in a container image")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/sbchaos/cake"

	flaggy.Bool(&showPackages, "p", "packages", "Show installed packages instead of the duplicate-file report")
	flaggy.Bool(&showTree, "t", "tree", "Show the image's file tree instead of the duplicate-file report")
	flaggy.Bool(&debuggingFlag, "d", "debug", "Enable trace level logging")
	flaggy.String(&logLevel, "l", "loglevel", "Log level: error, warn, info, debug, trace")
	flaggy.AddPositionalValue(&imageRef, "IMAGE", 1, true, "image reference, id, or cached artifact name")
	flaggy.SetVersion(info)

	flaggy.Parse()

	if !validLogLevel(logLevel) {
		log.Fatalf("invalid loglevel %q", logLevel)
	}

	appConfig := config.NewAppConfig(version, commit, date, debuggingFlag, logLevel)
	cakeApp := app.NewApp(appConfig)

	err := cakeApp.Analyze(imageRef, analyze.Options{
		ShowPackages: showPackages,
		ShowTree:     showTree,
	})
	if err != nil {
		cakeApp.Log.Debug(apperrors.Stack(err))
		log.Fatalf("analysis failed: %s", err.Error())
	}
}

func validLogLevel(level string) bool {
	switch level {
	case "error", "warn", "info", "debug", "trace":
		return true
	default:
		return false
	}
}

func updateBuildInfo() {
	if version == defaultVersion {
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range buildInfo.Settings {
				switch setting.Key {
				case "vcs.revision":
					commit = setting.Value
					// if cake was built from source we'll show the version as the
					// abbreviated commit hash
					version = utils.SafeTruncate(setting.Value, 7)
				case "vcs.time":
					date = setting.Value
				}
			}
		}
	}
}
