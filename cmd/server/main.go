package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/CABMadeira/bodet-scoreboard/pkg/config"
	"github.com/CABMadeira/bodet-scoreboard/pkg/log"
	"github.com/CABMadeira/bodet-scoreboard/pkg/overlay"
	"github.com/CABMadeira/bodet-scoreboard/pkg/servers"
	"github.com/CABMadeira/bodet-scoreboard/pkg/state"
	"github.com/CABMadeira/bodet-scoreboard/pkg/version"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	tcpAddr := flag.String("tcp-addr", "", "TCP listen address for scorepad frames")
	httpAddr := flag.String("http-addr", "", "HTTP listen address for the overlay")
	logLevel := flag.String("log-level", "", "Log level")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
	}

	// Flags override the config file.
	if *tcpAddr != "" {
		cfg.TCPAddr = *tcpAddr
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())
	ctx := context.Background()

	store := state.NewInMemorySnapshotStore()

	overlayServer := overlay.NewOverlayServer(overlay.NewOverlayServerOptions{
		Addr:         cfg.HTTPAddr,
		Store:        store,
		PushInterval: cfg.PushInterval(),
	})
	go overlayServer.Start()

	tcpServer := servers.NewTCPServer(servers.NewTCPServerOptions{
		Store:       store,
		Addr:        cfg.TCPAddr,
		ReadTimeout: cfg.ReadTimeout(),
	})

	log.Info("Starting scoreboard ingestion server")
	if err := tcpServer.Start(ctx); err != nil {
		log.Error("TCP server error: %v", err)
		os.Exit(1)
	}
}
