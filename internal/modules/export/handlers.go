package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/httpx"
)

// Handler handles export HTTP requests
type Handler struct {
	svc *Service
	log zerolog.Logger
}

// NewHandler creates a new export handler
func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.With().Str("handler", "export").Logger(),
	}
}

// Routes mounts the export routes
func (h *Handler) Routes(r chi.Router) {
	r.Get("/tables", h.handleListTables)
	r.Get("/csv/{table}", h.handleCSV)
	r.Get("/xlsx", h.handleWorkbook)
}

func (h *Handler) handleListTables(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.svc.Tables())
}

func (h *Handler) handleCSV(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_%s.csv", table, time.Now().Format("2006-01-02")))

	if err := h.svc.WriteCSV(table, w); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to export table")
	}
}

func (h *Handler) handleWorkbook(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=nps_accounting_%s.xlsx", time.Now().Format("2006-01-02")))

	if err := h.svc.WriteWorkbook(w); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to export workbook")
	}
}
