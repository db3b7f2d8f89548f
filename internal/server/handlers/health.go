package handlers

import (
	"net/http"
	"time"

	"github.com/opencollective/images/internal/server/response"
)

// Health serves the service health check.
// GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"uptime": time.Since(h.startTime).String(),
	})
}
