package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-chatedit/internal/config"
	"github.com/goliatone/go-chatedit/internal/logging"
	"github.com/goliatone/go-chatedit/pkg/assistant"
	"github.com/goliatone/go-chatedit/pkg/render"
	"github.com/goliatone/go-chatedit/pkg/renderers/html"
	"github.com/goliatone/go-chatedit/pkg/renderers/text"
	"github.com/goliatone/go-chatedit/pkg/schema"
)

const defaultDocument = "# Project Notes\n\nWelcome! This document will update as we chat.\n"

func main() {
	var (
		addrFlag      = flag.String("addr", "", "HTTP listen address (overrides config)")
		configFlag    = flag.String("config", "", "Configuration file (YAML)")
		schemaFlag    = flag.String("schema", "", "Form definition file (YAML); empty uses the built-in questionnaire")
		rendererFlag  = flag.String("renderer", "", "Default renderer name (overrides config)")
		shutdownGrace = flag.Duration("grace", 5*time.Second, "Shutdown grace period")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addrFlag != "" {
		cfg.Server.Addr = *addrFlag
	}
	if *schemaFlag != "" {
		cfg.Session.SchemaPath = *schemaFlag
	}
	if *rendererFlag != "" {
		cfg.Session.Renderer = *rendererFlag
	}

	logger, closeLogs, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() {
		if err := closeLogs(); err != nil {
			log.Printf("close logs: %v", err)
		}
	}()

	form := schema.Default()
	if cfg.Session.SchemaPath != "" {
		form, err = schema.LoadFile(cfg.Session.SchemaPath)
		if err != nil {
			log.Fatalf("schema: %v", err)
		}
	}

	collab, err := assistant.New(assistant.Config{
		Provider: cfg.Assistant.Provider,
		Model:    cfg.Assistant.Model,
		APIKey:   cfg.Assistant.APIKey,
		BaseURL:  cfg.Assistant.BaseURL,
	})
	if err != nil {
		log.Fatalf("assistant: %v", err)
	}

	registry := render.NewRegistry()
	registry.MustRegister(mustHTML())
	registry.MustRegister(text.New())
	if !registry.Has(cfg.Session.Renderer) {
		log.Fatalf("default renderer %q is not registered", cfg.Session.Renderer)
	}

	server := &chatServer{
		registry:        registry,
		defaultRenderer: cfg.Session.Renderer,
		schema:          form,
		document:        defaultDocument,
		collab:          collab,
		logger:          logger,
		theme:           resolveTheme(cfg.Theme.Name, cfg.Theme.Variant),
		sessions:        newSessionStore(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", server.pageHandler)
	mux.HandleFunc("/message", server.messageHandler)
	mux.HandleFunc("/panes", server.panesHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}

	logger.Info("listening",
		"addr", cfg.Server.Addr,
		"renderer", cfg.Session.Renderer,
		"provider", cfg.Assistant.Provider,
	)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		log.Fatalf("listen: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", "error", err)
	}
}

func mustHTML() render.Renderer {
	renderer, err := html.New()
	if err != nil {
		log.Fatalf("html renderer: %v", err)
	}
	return renderer
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
