package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/numkem/wasmrelay/compiler"
)

var version = "0.2.1"

func main() {
	// Parse command-line flags
	logLevel := flag.String("log", "info", "Logging level (debug, info, warn, error)")
	flag.Parse()

	// Set up logging
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(level)

	if os.Getenv("DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := parseConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, err := setupOTelSDK(ctx)
	if err != nil {
		log.Fatalf("failed to set up tracing: %v", err)
	}

	// One compiler client for the whole process, every job shares its
	// connection pool.
	rl := newRelay(compiler.NewClient(cfg.CompilerURL))
	log.Infof("Relaying jobs to compiler at %s", cfg.CompilerURL)

	if cfg.NatsURL != "" {
		nc, err := runNatsIngress(ctx, cfg.NatsURL, rl)
		if err != nil {
			log.Fatalf("failed to start NATS ingress: %v", err)
		}
		defer nc.Close()
	}

	// Start HTTP Server
	go runHTTP(cfg.Port, rl)

	// Listen for system interrupts for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	cancel()

	log.Info("Received shutdown signal, stopping server...")
	if err := otelShutdown(context.Background()); err != nil {
		log.Errorf("failed to shut down tracing: %v", err)
	}
}
