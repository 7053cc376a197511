package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/wkt2gml/internal/config"
	"github.com/woozymasta/wkt2gml/internal/logger"
	"github.com/woozymasta/wkt2gml/internal/server"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	Listen     string `short:"l" long:"listen" env:"LISTEN_ADDRESS" description:"Address to listen on, overrides the configuration file"`
	CacheSize  int    `long:"cache-size"       env:"CACHE_SIZE"     description:"Conversion cache entries, 0 disables; overrides the configuration file" default:"-1"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.LoadOrDefault(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}
	if opts.CacheSize >= 0 {
		cfg.CacheSize = opts.CacheSize
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	srvCtx := server.NewServerContext(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.Listen, server.NewRouter(srvCtx)); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
	log.Info().Msg("Server stopped")
}
