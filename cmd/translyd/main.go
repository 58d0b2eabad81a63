package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strconv"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/backend/argos"
	"github.com/transly-team/transly/internal/backend/ollama"
	"github.com/transly-team/transly/internal/backend/piper"
	"github.com/transly-team/transly/internal/backend/tesseract"
	"github.com/transly-team/transly/internal/backend/whisper"
	"github.com/transly-team/transly/internal/config"
	"github.com/transly-team/transly/internal/env"
	"github.com/transly-team/transly/internal/envvar"
	"github.com/transly-team/transly/internal/logger"
	"github.com/transly-team/transly/internal/model"
	httpserver "github.com/transly-team/transly/internal/server/http"
	"github.com/transly-team/transly/internal/service"
)

func main() {
	var (
		flagHTTPPort   = flag.Int("http-port", 0, "HTTP port to listen on (overrides config)")
		flagConfigPath = flag.String("config", path.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
		flagSchemaPath = flag.String("schema", path.Join(config.DefaultConfigPath(), "transly.v1.schema.json"), "Path to schema file")
	)
	flag.Parse()

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile("logs/translyd.log"),
		),
	)

	manager := model.NewManager()

	watcher, err := config.NewWatcher(*flagConfigPath, *flagSchemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}

		manager.LoadFromConfig(cfg)
	})
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
		os.Exit(1)
	}
	defer watcher.Close()

	cfg := watcher.Snapshot()
	manager.LoadFromConfig(cfg)
	slog.Info("Config loaded successfully", "config", *flagConfigPath, "schema", *flagSchemaPath)

	backends := registerBackends(cfg)
	defer backends.Close()
	defer manager.Close()

	// The translation model is small and needed by three endpoints, so load
	// it up front. Speech stays lazy: whisper models are big and the first
	// transcription can afford the hit.
	manager.Warmup(model.KindTranslation)

	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Transly", "1.0.0"))

	translate := service.NewTranslate(backends, manager)
	httpserver.RegisterHealth(api)
	httpserver.NewTranslateHandler(api, translate)
	httpserver.NewOCRHandler(api, service.NewOCR(backends), translate)
	httpserver.NewSpeechHandler(api,
		service.NewSTT(backends, manager),
		translate,
		service.NewTTS(backends, manager),
	)
	httpserver.NewChatbotHandler(api, service.NewChat(backends))

	addr := listenAddr(cfg, *flagHTTPPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr, "environment", environment)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}

// registerBackends builds the backend registry from the config. CLI backends
// whose binary is missing are skipped with a warning; the matching endpoints
// then answer 503. Ollama is HTTP, so it always registers and fails per
// request when the daemon is down.
func registerBackends(cfg *config.Config) *backend.Registry {
	registry := backend.NewRegistry()

	cli := []struct {
		provider backend.Provider
		binPath  string
		build    func(string) (backend.Backend, error)
	}{
		{backend.ProviderWhisperCPP, cfg.Backends.Whisper.BinPath, func(p string) (backend.Backend, error) { return whisper.NewBackend(p) }},
		{backend.ProviderArgos, cfg.Backends.Argos.BinPath, func(p string) (backend.Backend, error) { return argos.NewBackend(p) }},
		{backend.ProviderTesseract, cfg.Backends.Tesseract.BinPath, func(p string) (backend.Backend, error) { return tesseract.NewBackend(p) }},
		{backend.ProviderPiper, cfg.Backends.Piper.BinPath, func(p string) (backend.Backend, error) { return piper.NewBackend(p) }},
	}

	for _, c := range cli {
		if c.binPath == "" {
			slog.Warn("Backend not configured", "provider", c.provider)
			continue
		}

		b, err := c.build(c.binPath)
		if err != nil {
			slog.Warn("Backend unavailable", "provider", c.provider, "bin", c.binPath, "error", err)
			continue
		}

		registry.Register(b)
		slog.Info("Backend registered", "provider", c.provider, "bin", c.binPath)
	}

	baseURL := cfg.Backends.Ollama.BaseURL
	if v := os.Getenv(envvar.TranslyOllamaURL); v != "" {
		baseURL = v
	}
	registry.Register(ollama.NewBackend(baseURL))

	return registry
}

// listenAddr resolves the listen address.
// Precedence: -http-port flag, TRANSLY_HTTP_PORT, config, default.
func listenAddr(cfg *config.Config, flagPort int) string {
	port := config.DefaultHTTPPort()
	if cfg.Server.HTTPPort != 0 {
		port = cfg.Server.HTTPPort
	}
	if v := os.Getenv(envvar.TranslyHTTPPort); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		} else {
			slog.Warn("Ignoring invalid port", "var", envvar.TranslyHTTPPort, "value", v)
		}
	}
	if flagPort != 0 {
		port = flagPort
	}

	host := cfg.Server.Host
	if host == "" {
		host = config.DefaultHTTPHost()
	}

	return fmt.Sprintf("%s:%d", host, port)
}
