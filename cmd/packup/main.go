package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/packup/internal/api"
	"github.com/idilsaglam/packup/internal/auth"
	"github.com/idilsaglam/packup/internal/cli"
	"github.com/idilsaglam/packup/internal/config"
	"github.com/idilsaglam/packup/internal/logging"
)

func main() {
	// .env is optional; env vars win either way
	_ = godotenv.Load()

	// Root flags (apply to every subcommand)
	server := flag.String("server", "", "backend base URL (overrides PACKUP_SERVER_URL)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	cfg := config.FromEnv()
	if *server != "" {
		cfg.ServerURL = *server
	}
	if *debug {
		cfg.Debug = true
	}

	log, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
	}
	defer func() { _ = log.Sync() }()

	token := ""
	if ti, err := auth.GetToken(); err == nil && ti != nil {
		token = ti.Token
	}

	client := api.NewClient(cfg.ServerURL, cfg.Timeout, token, log)

	code := cli.Run(flag.Args(), cli.Deps{Client: client, Log: log})
	os.Exit(code)
}
