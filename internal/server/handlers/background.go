package handlers

import (
	"net/http"

	"github.com/opencollective/images/internal/server/response"
	"github.com/opencollective/images/pkg/errors"
	"github.com/opencollective/images/pkg/logging"
)

// Background serves the collective background image, resized.
// GET /{collectiveSlug}/background.{format}
func (h *Handlers) Background(w http.ResponseWriter, r *http.Request, slug, format string) {
	logger := logging.Ctx(r.Context())

	response.CachePublic(w, imageCacheMaxAge)

	collective, err := h.graph.Collective(r.Context(), slug)
	if err != nil {
		if errors.IsNotFound(err) {
			response.NotFound(w, "")
			return
		}
		logger.Error().Err(err).Str("collective", slug).Msg("Failed to resolve collective for background")
		response.FromError(w, err)
		return
	}
	if collective.BackgroundImage == "" {
		response.NotFound(w, "No collective background image")
		return
	}

	data, err := h.fetch.FetchBytes(r.Context(), collective.BackgroundImage)
	if err != nil {
		logger.Error().Err(err).Str("url", collective.BackgroundImage).Msg("Failed to fetch background image")
		response.FromError(w, err)
		return
	}

	h.serveResized(w, r, data, format)
}
