package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/video-blog/internal/adapter"
	"github.com/MKhiriev/video-blog/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// clientConfig is read from the environment only; per-command values come
// from flags.
type clientConfig struct {
	Address  string        `env:"VIDEOBLOG_ADDRESS" envDefault:"localhost:8080"`
	Token    string        `env:"VIDEOBLOG_TOKEN"`
	Timeout  time.Duration `env:"VIDEOBLOG_TIMEOUT" envDefault:"10s"`
	LogLevel string        `env:"VIDEOBLOG_LOG_LEVEL" envDefault:"warn"`
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("video-blog-client")

	var cfg clientConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Address, cfg.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	serverAdapter.SetToken(cfg.Token)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, serverAdapter, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
