package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omarembaby39-afk/Nps-Acc/internal/config"
	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/scheduler"
	"github.com/omarembaby39-afk/Nps-Acc/internal/server"
	"github.com/omarembaby39-afk/Nps-Acc/internal/services"
	"github.com/omarembaby39-afk/Nps-Acc/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting NPS Accounting")

	// Initialize database
	db, err := database.New(database.Config{
		PostgresURL: cfg.DatabaseURL,
		SQLitePath:  cfg.DatabasePath,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	log.Info().Str("backend", db.Backend().String()).Msg("Database ready")

	// Initialize scheduler
	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	// Nightly snapshots only make sense for the embedded backend.
	var backupJob *services.BackupService
	if db.Backend() == database.BackendSQLite {
		backupJob = services.NewBackupService(db, cfg.BackupDir, 14, log)
		if err := sched.AddJob(cfg.BackupSchedule, backupJob); err != nil {
			log.Fatal().Err(err).Msg("Failed to register backup job")
		}
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:      cfg.Port,
		Log:       log,
		DB:        db,
		Config:    cfg,
		Scheduler: sched,
		BackupJob: backupJob,
		DevMode:   cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
