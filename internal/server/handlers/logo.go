package handlers

import (
	"net/http"

	"github.com/opencollective/images/internal/imgproc"
	"github.com/opencollective/images/internal/server/response"
	"github.com/opencollective/images/pkg/errors"
	"github.com/opencollective/images/pkg/logging"
)

// imageCacheMaxAge is the logo/background cache lifetime in seconds
// (60 days). The CDN is purged on each deploy, so the long lifetime is safe.
const imageCacheMaxAge = 5184000

// Logo serves the collective logo, resized or rendered as ASCII art.
// GET /{collectiveSlug}/logo.{format}
func (h *Handlers) Logo(w http.ResponseWriter, r *http.Request, slug, format string) {
	logger := logging.Ctx(r.Context())

	// The CDN is purged on each deploy, so the long lifetime applies to
	// every response on this surface.
	response.CachePublic(w, imageCacheMaxAge)

	collective, err := h.graph.Collective(r.Context(), slug)
	if err != nil {
		if errors.IsNotFound(err) {
			response.NotFound(w, "")
			return
		}
		logger.Error().Err(err).Str("collective", slug).Msg("Failed to resolve collective for logo")
		response.FromError(w, err)
		return
	}
	if collective.Image == "" {
		response.NotFound(w, "No collective image")
		return
	}

	if format == "txt" {
		h.serveASCII(w, r, collective.Image)
		return
	}

	data, err := h.fetch.FetchBytes(r.Context(), collective.Image)
	if err != nil {
		logger.Error().Err(err).Str("url", collective.Image).Msg("Failed to fetch logo image")
		response.FromError(w, err)
		return
	}

	h.serveResized(w, r, data, format)
}

// serveASCII renders image data as ASCII art text.
func (h *Handlers) serveASCII(w http.ResponseWriter, r *http.Request, imageURL string) {
	logger := logging.Ctx(r.Context())

	data, err := h.fetch.FetchBytes(r.Context(), imageURL)
	if err != nil {
		logger.Error().Err(err).Str("url", imageURL).Msg("Failed to fetch image for ASCII art")
		response.InternalError(w, "Unable to create an ASCII art")
		return
	}

	text, err := imgproc.Ascii(data, parseAsciiOptions(r.URL.Query()))
	if err != nil {
		logger.Error().Err(err).Str("url", imageURL).Msg("Failed to render ASCII art")
		response.InternalError(w, "Unable to create an ASCII art")
		return
	}

	response.Text(w, text)
}

// serveResized streams image data through the resize pipeline. SVG output
// streams the source bytes unmodified since raster sources cannot be
// converted to vectors.
func (h *Handlers) serveResized(w http.ResponseWriter, r *http.Request, data []byte, format string) {
	logger := logging.Ctx(r.Context())
	q := r.URL.Query()

	if format == "svg" {
		response.Bytes(w, "", data)
		return
	}

	width := parseInt(q, "width", 0)
	height := parseInt(q, "height", 0)

	w.Header().Set("Content-Type", contentTypeFor(format))
	if err := imgproc.Resize(w, data, width, height, format); err != nil {
		logger.Error().Err(err).Str("format", format).Msg("Failed to resize image")
		response.FromError(w, err)
		return
	}
}
