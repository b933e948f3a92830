package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gracechapel/api/internal/app"
	"github.com/gracechapel/api/internal/config"
	"github.com/gracechapel/api/internal/logger"
	"github.com/gracechapel/api/internal/routes"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		closeErr := a.Close()
		if closeErr != nil {
			slog.Error("shutdown cleanup failed", "error", closeErr)
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("listening", "app", cfg.AppName, "addr", srv.Addr, "env", cfg.AppEnv)

	err = srv.ListenAndServe()
	if err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
