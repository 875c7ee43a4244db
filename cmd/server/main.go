package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"go-movie-catalog/internal/config"
	"go-movie-catalog/internal/storage"
	"go-movie-catalog/internal/website"
)

// application holds the application-wide dependencies for the preview
// server. The server is a read-only consumer of the store: it renders the
// catalog page and exposes the list projection, nothing mutates.
type application struct {
	logger *slog.Logger
	store  storage.MovieStore
	engine *website.Engine
}

func main() {
	// 1. Define and parse command-line flags
	port := flag.String("port", "", "Port to listen on (defaults to server.port from config)")
	configPath := flag.String("config", "", "Path to config file (optional)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		logger.Error("Failed to open catalog", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}

	engine := website.NewEngine(store, cfg.Website.Title)
	engine.TemplatePath = cfg.Website.Template

	app := &application{
		logger: logger,
		store:  store,
		engine: engine,
	}

	listenPort := cfg.Server.Port
	if *port != "" {
		listenPort = *port
	}
	addr := ":" + listenPort

	logger.Info("Starting catalog preview server", "addr", addr, "backend", cfg.Storage.Backend, "path", cfg.Storage.Path)
	if err := http.ListenAndServe(addr, app.routes()); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
