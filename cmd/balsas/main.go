// Balsas is an HTTP gateway that synthesizes Lithuanian speech. It forwards
// text to the Azure Cognitive Services speech endpoint as SSML and returns
// the audio base64-encoded.
//
// Usage:
//
//	balsas [flags]
//	balsas --config /path/to/balsas.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/audriusb/balsas/internal/config"
	"github.com/audriusb/balsas/internal/health"
	"github.com/audriusb/balsas/internal/metrics"
	"github.com/audriusb/balsas/internal/server"
	"github.com/audriusb/balsas/internal/service"
	"github.com/audriusb/balsas/internal/synth"
	"github.com/audriusb/balsas/internal/synth/azure"
)

// version is set at build time via ldflags.
var version = "dev"

// @title       Balsas Lithuanian TTS API
// @version     1.0
// @description HTTP gateway that synthesizes Lithuanian speech via Azure Cognitive Services.
// @BasePath    /
func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/balsas.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("balsas %s\n", version)
		os.Exit(0)
	}

	// Pick up a local .env before config resolution (development convenience).
	_ = godotenv.Load()

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("balsas starting", "version", version)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize the provider backend.
	var synthesizer synth.Synthesizer
	switch cfg.Provider.Backend {
	case "azure":
		synthesizer = azure.New(cfg.Provider.Azure)
		slog.Info("using azure speech backend",
			"region", cfg.Provider.Azure.Region,
			"timeout", cfg.Provider.Azure.Timeout)
	default:
		slog.Error("unknown provider backend", "backend", cfg.Provider.Backend)
		os.Exit(1)
	}
	defer synthesizer.Close()

	if !cfg.CredentialPresent() {
		slog.Warn("no speech credential configured — /synthesize will fail until AZURE_SPEECH_KEY is set")
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	svc := service.New(synthesizer, cfg, m)
	api := server.New(cfg.Server.Port, svc)

	// Start the ops server (liveness, readiness, metrics).
	opsServer := health.New(cfg.Server.OpsPort)
	go func() {
		if err := opsServer.ListenAndServe(ctx); err != nil {
			slog.Error("ops server failed", "error", err)
		}
	}()

	// Start the API server.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := api.ListenAndServe(ctx); err != nil {
			slog.Error("api server failed", "error", err)
		}
	}()

	// Mark as ready once the API is up.
	opsServer.SetReady(true)
	slog.Info("balsas ready",
		"port", cfg.Server.Port,
		"ops_port", cfg.Server.OpsPort,
		"credential_present", cfg.CredentialPresent())

	// Block until shutdown signal.
	<-ctx.Done()
	slog.Info("shutdown signal received, draining...")

	if err := api.Close(); err != nil {
		slog.Error("api server close error", "error", err)
	}

	wg.Wait()
	slog.Info("balsas stopped")
}
