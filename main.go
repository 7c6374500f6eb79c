package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/olympics-app/auth"
	"github.com/danielhkuo/olympics-app/cliparse"
	"github.com/danielhkuo/olympics-app/db"
	"github.com/danielhkuo/olympics-app/metrics"
	"github.com/danielhkuo/olympics-app/repository"
	"github.com/danielhkuo/olympics-app/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	users, err := auth.NewFileUserStore(cfg.UsersFile)
	if err != nil {
		slog.Error("failed to load users", "file", cfg.UsersFile, "error", err)
		os.Exit(1)
	}
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies)

	// Create router
	store := repository.New(dbConn, cfg.DatabaseType)
	handler := router.NewRouter(store, cfg, sessions, users, metrics.New())

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setupLogging installs the default slog handler for the configured format
func setupLogging(cfg cliparse.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}
