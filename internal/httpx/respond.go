// Package httpx holds small response helpers shared by module handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/domain"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError maps an error onto the HTTP surface:
// not found -> 404, backend unavailable -> 503, schema mismatch -> 500
// with detail, validation -> 422, anything else -> 500 with the
// fallback message.
func WriteError(w http.ResponseWriter, log zerolog.Logger, err error, fallback string) {
	var (
		schemaErr     *database.SchemaMismatchError
		validationErr *domain.ValidationError
	)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
	case errors.Is(err, database.ErrBackendUnavailable):
		log.Error().Err(err).Msg("Backend unavailable")
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "database backend unavailable"})
	case errors.As(err, &schemaErr):
		log.Error().Err(err).Str("table", schemaErr.Table).Str("column", schemaErr.Column).Msg("Schema mismatch")
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": schemaErr.Error()})
	case errors.As(err, &validationErr):
		WriteJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": validationErr.Error(),
			"field": validationErr.Field,
		})
	default:
		log.Error().Err(err).Msg(fallback)
		WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": fallback})
	}
}
