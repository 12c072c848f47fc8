package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/config"
	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/httpx"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/cashbook"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/debts"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/export"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/hr"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/invoices"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/journal"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/projects"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/reports"
	"github.com/omarembaby39-afk/Nps-Acc/internal/modules/rollup"
	"github.com/omarembaby39-afk/Nps-Acc/internal/scheduler"
	"github.com/omarembaby39-afk/Nps-Acc/internal/services"
)

// Config holds server configuration
type Config struct {
	Port      int
	Log       zerolog.Logger
	DB        *database.DB
	Config    *config.Config
	Scheduler *scheduler.Scheduler
	BackupJob *services.BackupService
	DevMode   bool
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	db     *database.DB
	cfg    *config.Config
	sched  *scheduler.Scheduler
	backup *services.BackupService
}

// New creates a new HTTP server with all module routes mounted
func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		db:     cfg.DB,
		cfg:    cfg.Config,
		sched:  cfg.Scheduler,
		backup: cfg.BackupJob,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	ledger := rollup.NewLedger(s.db, s.log)
	engine := rollup.NewEngine(ledger, s.log)
	rollupHandler := rollup.NewHandler(engine, s.log)

	projectsHandler := projects.NewHandler(projects.NewRepository(s.db, s.log), s.log)
	cashHandler := cashbook.NewHandler(cashbook.NewRepository(s.db, s.log), s.log)
	invoiceStore := invoices.NewAttachmentStore(s.cfg.AttachmentDir)
	invoicesHandler := invoices.NewHandler(invoices.NewRepository(s.db, s.log), invoiceStore, s.log)
	debtsHandler := debts.NewHandler(debts.NewRepository(s.db, s.log), s.log)
	hrHandler := hr.NewHandler(hr.NewRepository(s.db, s.log), s.log)
	journalHandler := journal.NewHandler(journal.NewRepository(s.db, s.log), s.log)
	reportsHandler := reports.NewHandler(reports.NewService(s.db, s.log), s.log)
	exportHandler := export.NewHandler(export.NewService(s.db, engine, s.log), s.log)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// System
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})

		// Record keeping
		r.Route("/projects", projectsHandler.Routes)
		r.Route("/cash", cashHandler.Routes)
		r.Route("/invoices", invoicesHandler.Routes)
		r.Route("/debts", debtsHandler.Routes)
		r.Route("/hr", hrHandler.Routes)
		r.Route("/journal", journalHandler.Routes)

		// Rollups and reporting
		r.Route("/summary", func(r chi.Router) {
			r.Get("/projects", rollupHandler.HandleProjectSummaries)
			r.Get("/company", rollupHandler.HandleCompanySummary)
			r.Get("/alerts", rollupHandler.HandleAlerts)
			r.Get("/top", rollupHandler.HandleTopProjects)
		})
		r.Route("/reports", reportsHandler.Routes)
		r.Route("/export", exportHandler.Routes)

		// Backup
		r.Post("/backup/run", s.handleRunBackup)
	})
}

func (s *Server) handleRunBackup(w http.ResponseWriter, r *http.Request) {
	if s.backup == nil {
		http.Error(w, "Backup not configured", http.StatusServiceUnavailable)
		return
	}

	if err := s.sched.RunNow(s.backup); err != nil {
		httpx.WriteError(w, s.log, err, "Backup failed")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
