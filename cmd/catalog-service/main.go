package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/catalog-service/internal/auth"
	"github.com/vasiliy-maslov/catalog-service/internal/catalog"
	"github.com/vasiliy-maslov/catalog-service/internal/config"
	"github.com/vasiliy-maslov/catalog-service/internal/db"
	catalogHttp "github.com/vasiliy-maslov/catalog-service/internal/handler/http"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Str("service", "catalog-service").Logger()

	log.Info().Msg("Starting catalog-service...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	database, err := db.New(cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	catalogRepo := catalog.NewRepository(database.Pool)
	catalogSvc := catalog.NewService(catalogRepo)

	authRepo := auth.NewRepository(database.Pool)
	authSvc := auth.NewService(authRepo)

	router := catalogHttp.NewRouter(catalogSvc, authSvc, cfg.App.EnforcePermissions)

	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			if _, err := authSvc.CleanupExpiredSessions(cleanupCtx); err != nil {
				log.Warn().Err(err).Msg("Failed to clean up expired sessions")
			}
			select {
			case <-ticker.C:
			case <-cleanupCtx.Done():
				return
			}
		}
	}()

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Str("port", cfg.App.Port).Msg("HTTP server failed")
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	database.Close()

	log.Info().Msg("Catalog-service stopped gracefully.")
}
