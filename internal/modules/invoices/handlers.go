package invoices

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/httpx"
)

const maxAttachmentSize = 20 << 20 // 20 MB

// Handler handles invoice HTTP requests
type Handler struct {
	repo  *Repository
	store *AttachmentStore
	log   zerolog.Logger
}

// NewHandler creates a new invoice handler
func NewHandler(repo *Repository, store *AttachmentStore, log zerolog.Logger) *Handler {
	return &Handler{
		repo:  repo,
		store: store,
		log:   log.With().Str("handler", "invoices").Logger(),
	}
}

// Routes mounts the invoice routes
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Get("/{id}", h.handleGet)
	r.Post("/", h.handleCreate)
	r.Put("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
	r.Post("/{id}/attachment", h.handleUploadAttachment)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var limit *int
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 || l > 10000 {
			http.Error(w, "Invalid limit. Must be 1-10000", http.StatusBadRequest)
			return
		}
		limit = &l
	}

	list, err := h.repo.List(limit)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to list invoices")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.repo.GetByID(id)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to get invoice")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var inv Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	// Attachments only arrive through the upload endpoint.
	inv.AttachmentPath = ""

	if err := h.repo.Create(&inv); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to create invoice")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, inv)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	var inv Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.repo.Update(id, &inv); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to update invoice")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inv)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(id); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to delete invoice")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) handleUploadAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.repo.GetByID(id)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to get invoice")
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		http.Error(w, "Invalid multipart body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	path, err := h.store.Save(inv.ProjectCode, inv.InvoiceNo, header.Filename, file)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to store attachment")
		return
	}

	if err := h.repo.SetAttachment(id, path); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to record attachment")
		return
	}

	h.log.Info().Int("invoice_id", id).Str("path", path).Msg("Attachment stored")
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"attachment_path": path})
}
