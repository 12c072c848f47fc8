package hr

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/httpx"
)

// Handler handles HR HTTP requests
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new HR handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "hr").Logger(),
	}
}

// Routes mounts the HR routes
func (h *Handler) Routes(r chi.Router) {
	r.Get("/people", h.handleListPeople)
	r.Post("/people", h.handleCreatePerson)
	r.Put("/people/{id}", h.handleUpdatePerson)
	r.Delete("/people/{id}", h.handleDeletePerson)

	r.Get("/visas", h.handleListVisas)
	r.Post("/visas", h.handleCreateVisa)
	r.Delete("/visas/{id}", h.handleDeleteVisa)

	r.Get("/tickets", h.handleListTickets)
	r.Post("/tickets", h.handleCreateTicket)
	r.Delete("/tickets/{id}", h.handleDeleteTicket)

	r.Get("/payroll", h.handlePayroll)
}

func (h *Handler) handleListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.repo.ListPeople()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to list people")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, people)
}

func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var p Person
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.repo.CreatePerson(&p); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to create person")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	var p Person
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdatePerson(id, &p); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to update person")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeletePerson(id); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to delete person")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) handleListVisas(w http.ResponseWriter, r *http.Request) {
	visas, err := h.repo.ListVisas()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to list visas")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, visas)
}

func (h *Handler) handleCreateVisa(w http.ResponseWriter, r *http.Request) {
	var v Visa
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.repo.CreateVisa(&v); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to create visa")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, v)
}

func (h *Handler) handleDeleteVisa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteVisa(id); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to delete visa")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) handleListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.repo.ListTickets()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to list tickets")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tickets)
}

func (h *Handler) handleCreateTicket(w http.ResponseWriter, r *http.Request) {
	var tk Ticket
	if err := json.NewDecoder(r.Body).Decode(&tk); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.repo.CreateTicket(&tk); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to create ticket")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, tk)
}

func (h *Handler) handleDeleteTicket(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteTicket(id); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to delete ticket")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) handlePayroll(w http.ResponseWriter, r *http.Request) {
	summary, err := h.repo.PayrollByProject()
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to compute payroll summary")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, summary)
}
