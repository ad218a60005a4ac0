// cmd/healthlogger/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/u1and0/HealthLogger/internal/acquire"
	"github.com/u1and0/HealthLogger/internal/config"
)

// Exit codes. The invoking environment (systemd unit, shutdown button
// handler) distinguishes a clean operator shutdown from a dead instrument.
const (
	exitOK       = 0
	exitConfig   = 1
	exitNoDevice = 2
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config file (defaults apply when omitted)")
	flag.Parse()

	// Diagnostics go to stderr; stdout carries only record lines and is
	// redirected to the timestamped log file by the invoking environment.
	log.SetPrefix("healthlogger: ")

	// --------------------
	// Load + validate config
	// --------------------

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Printf("config load failed: %v", err)
			os.Exit(exitConfig)
		}
		config.Normalize(loaded)
		cfg = loaded
	}
	if err := config.Validate(cfg); err != nil {
		log.Printf("config validation failed: %v", err)
		os.Exit(exitConfig)
	}

	// --------------------
	// Build the acquisition pipeline
	// --------------------

	loop, cleanup, err := acquire.Build(*cfg, os.Stdout)
	if err != nil {
		log.Printf("build failed: %v", err)
		os.Exit(exitConfig)
	}
	defer cleanup()

	// The shutdown button reaches us as SIGTERM (SIGINT covers a terminal).
	// The loop observes cancellation only at its safe point.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil {
		if errors.Is(err, acquire.ErrReconnectExhausted) {
			log.Printf("giving up: %v", err)
			cleanup()
			os.Exit(exitNoDevice)
		}
		log.Printf("fatal: %v", err)
		cleanup()
		os.Exit(exitConfig)
	}

	log.Print("clean shutdown")
}
