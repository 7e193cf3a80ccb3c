// Package main is the entry point for the fakturo API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fakturo/internal/config"
	"fakturo/internal/domain/auth"
	"fakturo/internal/infrastructure/artifactfs"
	v1 "fakturo/internal/infrastructure/http/v1"
	"fakturo/internal/infrastructure/storage/sqlite"
	"fakturo/internal/infrastructure/storage/sqlite/auth_repo"
	"fakturo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("configuration error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting fakturo server")

	// --- Storage ---
	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalw("failed to open database", "path", cfg.DatabasePath, "error", err)
	}
	defer db.Close()
	log.Infow("database ready", "path", cfg.DatabasePath)

	artifactStore, err := artifactfs.New(cfg.ArtifactsDir)
	if err != nil {
		log.Fatalw("failed to initialize artifact store", "dir", cfg.ArtifactsDir, "error", err)
	}

	// --- Auth ---
	txm := sqlite.NewTxManager(db)
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(cfg.JWTSecret))
	authService := auth.NewService(auth_repo.NewUserRepo(txm), txm, jwtService)

	if cfg.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatalw("failed to seed admin user", "error", err)
		}
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		DB:            db,
		Logger:        log,
		ArtifactStore: artifactStore,
		AuthService:   authService,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
