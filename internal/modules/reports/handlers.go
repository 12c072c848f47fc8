package reports

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/httpx"
)

// Handler handles reporting HTTP requests
type Handler struct {
	svc *Service
	log zerolog.Logger
}

// NewHandler creates a new reports handler
func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.With().Str("handler", "reports").Logger(),
	}
}

// Routes mounts the reporting routes
func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly-cash", h.handleCashTrend)
	r.Get("/recent", h.handleRecent)
}

func (h *Handler) handleCashTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := h.svc.MonthlyCashTrend()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to compute cash trend")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trend)
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	n := 5
	if nStr := r.URL.Query().Get("n"); nStr != "" {
		parsed, err := strconv.Atoi(nStr)
		if err != nil || parsed < 1 || parsed > 100 {
			http.Error(w, "Invalid n. Must be 1-100", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	activity, err := h.svc.Recent(n)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to load recent activity")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, activity)
}
