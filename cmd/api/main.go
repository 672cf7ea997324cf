package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aethervault/internal/config"
	"aethervault/internal/httpserver"
	"aethervault/internal/logger"
	"aethervault/internal/store"
)

func main() {
	cfg, err := config.Load(os.Getenv("AETHERVAULT_CONFIG"))
	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()
	if err != nil {
		lg.Fatalw("config load failed", "error", err)
	}

	var st store.Store
	if cfg.DatabaseURL == "" {
		lg.Warnw("DATABASE_URL is empty, using in-memory store")
		st = store.NewMemory()
	} else {
		db, err := store.Open(cfg.DatabaseURL)
		if err != nil {
			lg.Fatalw("db connect failed", "error", err)
		}
		st = db
	}
	if err := httpserver.SeedAlgorithms(context.Background(), st); err != nil {
		lg.Fatalw("seed algorithms failed", "error", err)
	}
	if cfg.JWTSecret == "" {
		lg.Warnw("JWT_SECRET is empty, login and /v1/logs are disabled")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           httpserver.NewRouter(st, lg, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	lg.Infow("listening", "port", cfg.HTTPPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Fatalw("server failed", "error", err)
	}
}
