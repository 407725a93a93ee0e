package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-nadsenci-web/internal/adapters/storage"
	"ai-nadsenci-web/internal/platform/config"
	"ai-nadsenci-web/internal/platform/logger"
	"ai-nadsenci-web/internal/platform/metrics"
	"ai-nadsenci-web/internal/router"
)

// @title AI nadšenci API
// @version 1.0
// @description Eventos de la comunidad AI nadšenci en JSON.
// @BasePath /
func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	src, closeSrc, err := storage.Open(cfg.Content)
	if err != nil {
		log.Error("content source", map[string]any{"source": cfg.Content.Source, "err": err})
		os.Exit(1)
	}
	defer closeSrc()

	var m *metrics.Metrics
	if cfg.Metrics.Enable {
		m = metrics.New()
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.NewRouter(router.Options{
			Logger:    log,
			Metrics:   m,
			BasePath:  cfg.Server.BasePath,
			Source:    src,
			StaticDir: cfg.Server.StaticDir,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", map[string]any{
			"addr":      cfg.Server.Addr,
			"base_path": cfg.Server.BasePath,
			"source":    cfg.Content.Source,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown", map[string]any{"err": err})
	}
}
