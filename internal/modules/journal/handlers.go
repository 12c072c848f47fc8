package journal

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/httpx"
)

// Handler handles accounting journal HTTP requests
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new journal handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "journal").Logger(),
	}
}

// Routes mounts the journal routes
func (h *Handler) Routes(r chi.Router) {
	r.Get("/accounts", h.handleListAccounts)
	r.Post("/accounts", h.handleCreateAccount)
	r.Delete("/accounts/{id}", h.handleDeleteAccount)

	r.Get("/entries", h.handleListEntries)
	r.Post("/entries", h.handleCreateEntry)
	r.Delete("/entries/{id}", h.handleDeleteEntry)

	r.Get("/trial-balance", h.handleTrialBalance)
}

func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.repo.ListAccounts()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to list accounts")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accounts)
}

func (h *Handler) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var a Account
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.repo.CreateAccount(&a); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to create account")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteAccount(id); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to delete account")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repo.ListEntries()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to list journal lines")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var e Entry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.repo.CreateEntry(&e); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to post journal line")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteEntry(id); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to delete journal line")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) handleTrialBalance(w http.ResponseWriter, r *http.Request) {
	lines, err := h.repo.TrialBalance()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to compute trial balance")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lines)
}
