package handler

import (
	"net/http"
	"time"
)

// MetaHandler serves the health check and API information endpoints.
type MetaHandler struct {
	version string
}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler(version string) *MetaHandler {
	return &MetaHandler{version: version}
}

// Health handles GET /health requests.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Info handles GET / requests.
func (h *MetaHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Totem API - Gerenciamento de catálogo para totens de autoatendimento",
		"version": h.version,
		"endpoints": map[string]string{
			"health":   "/health",
			"products": "/products",
			"docs":     "/api-docs",
		},
	})
}
