package rollup

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/httpx"
)

// Handler serves the summary dashboard endpoints
type Handler struct {
	engine *Engine
	log    zerolog.Logger
}

// NewHandler creates a summary handler
func NewHandler(engine *Engine, log zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		log:    log.With().Str("handler", "rollup").Logger(),
	}
}

// HandleProjectSummaries handles GET /summary/projects
func (h *Handler) HandleProjectSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, _, err := h.engine.Summarize()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to compute project summaries")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, summaries)
}

// HandleCompanySummary handles GET /summary/company
func (h *Handler) HandleCompanySummary(w http.ResponseWriter, r *http.Request) {
	_, company, err := h.engine.Summarize()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to compute company summary")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, company)
}

// HandleAlerts handles GET /summary/alerts
func (h *Handler) HandleAlerts(w http.ResponseWriter, r *http.Request) {
	_, company, err := h.engine.Summarize()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to compute alerts")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, EvaluateAlerts(company))
}

// HandleTopProjects handles GET /summary/top?by=profit|revenue&limit=N
func (h *Handler) HandleTopProjects(w http.ResponseWriter, r *http.Request) {
	by := ByProfit
	switch r.URL.Query().Get("by") {
	case "", "profit":
		by = ByProfit
	case "revenue":
		by = ByRevenue
	default:
		http.Error(w, "Invalid metric. Use by=profit or by=revenue", http.StatusBadRequest)
		return
	}

	limit := 5
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 || l > 100 {
			http.Error(w, "Invalid limit. Must be 1-100", http.StatusBadRequest)
			return
		}
		limit = l
	}

	summaries, _, err := h.engine.Summarize()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to compute top projects")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TopProjects(summaries, by, limit))
}
