package main

import (
	"os"

	"github.com/MKhiriev/go-column-client/internal/client"
	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/console"
	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/resolver"
	"github.com/MKhiriev/go-column-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 when the operator quit, 1 when the
// client could not start, connect or finish its session.
func run() int {
	cfg, err := config.GetClientConfig()
	if err != nil {
		console.New(os.Stdin, os.Stdout, os.Stderr, "").Diagnostic(err)
		return 1
	}

	log := logger.NewClientLogger("column-client", cfg.LogFile)
	logBuildInfo(log)
	log.Debug().Any("config", cfg).Msg("received configs")

	ui := console.New(os.Stdin, os.Stdout, os.Stderr, cfg.DefaultHost)

	app, err := client.NewApp(cfg, ui, resolver.NewResolver(log), os.Stdout, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		ui.Diagnostic(err)
		return 1
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
		return 1
	}

	return 0
}

func logBuildInfo(log *logger.Logger) {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log.Info().
		Str("build_version", info.BuildVersion()).
		Str("build_date", info.BuildDate()).
		Str("build_commit", info.BuildCommit()).
		Msg("column client starting")
}
