package cashbook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCreate_Valid(t *testing.T) {
	repo := setupTestRepo(t)
	handler := NewHandler(repo, zerolog.Nop())

	body := `{"date":"2024-01-10","project_code":"P1","debit":800}`
	req := httptest.NewRequest("POST", "/cash", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.handleCreate(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var e Entry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&e))
	assert.NotZero(t, e.ID)
	assert.Equal(t, 800.0, e.Debit)
}

func TestHandleCreate_ValidationMapsTo422(t *testing.T) {
	repo := setupTestRepo(t)
	handler := NewHandler(repo, zerolog.Nop())

	body := `{"date":"2024-01-10","debit":100,"credit":50}`
	req := httptest.NewRequest("POST", "/cash", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.handleCreate(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "debit")
}

func TestHandleList_Limit(t *testing.T) {
	repo := setupTestRepo(t)
	handler := NewHandler(repo, zerolog.Nop())

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(&Entry{Date: "2024-01-10", Debit: float64(100 + i)}))
	}

	req := httptest.NewRequest("GET", "/cash?limit=3", nil)
	w := httptest.NewRecorder()
	handler.handleList(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var entries []Entry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&entries))
	assert.Len(t, entries, 3)
}

func TestHandleList_InvalidLimit(t *testing.T) {
	repo := setupTestRepo(t)
	handler := NewHandler(repo, zerolog.Nop())

	req := httptest.NewRequest("GET", "/cash?limit=abc", nil)
	w := httptest.NewRecorder()
	handler.handleList(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid limit")
}
