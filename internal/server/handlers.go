package server

import (
	"net/http"
	"os"
	"runtime"

	"github.com/omarembaby39-afk/Nps-Acc/internal/database"
	"github.com/omarembaby39-afk/Nps-Acc/internal/httpx"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "nps-accounting",
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// handleSystemStatus handles system status requests
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	dbInfo := map[string]interface{}{
		"backend": s.db.Backend().String(),
	}
	if s.db.Backend() == database.BackendSQLite {
		dbInfo["path"] = s.db.Path()
		if info, err := os.Stat(s.db.Path()); err == nil {
			dbInfo["size_mb"] = float64(info.Size()) / 1024 / 1024
		}
	}

	response := map[string]interface{}{
		"status":   "running",
		"database": dbInfo,
		"memory": map[string]interface{}{
			"alloc_mb":       m.Alloc / 1024 / 1024,
			"total_alloc_mb": m.TotalAlloc / 1024 / 1024,
			"sys_mb":         m.Sys / 1024 / 1024,
			"num_gc":         m.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
