// Package response provides HTTP response helpers for the image endpoints.
// Image payloads are streamed with an explicit content type and cache
// lifetime; errors are plain-text bodies so badge and logo consumers see
// the documented "Not found" strings.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/opencollective/images/pkg/errors"
)

// Content types served by this service.
const (
	ContentTypeSVG  = "image/svg+xml; charset=utf-8"
	ContentTypePNG  = "image/png"
	ContentTypeText = "text/plain; charset=utf-8"
)

// CacheFor sets a bare max-age cache header.
func CacheFor(w http.ResponseWriter, seconds int) {
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", seconds))
}

// CachePublic sets a public max-age cache header.
func CachePublic(w http.ResponseWriter, seconds int) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", seconds))
}

// SVG writes an SVG body with 200 status.
func SVG(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", ContentTypeSVG)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// PNG writes a PNG body with 200 status.
func PNG(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", ContentTypePNG)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Bytes writes a raw body with 200 status, sniffing the content type when
// none is given.
func Bytes(w http.ResponseWriter, contentType string, body []byte) {
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Text writes a plain-text body with 200 status.
func Text(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// NotFound writes a 404 with the documented body: "Not found", or
// "Not found (<detail>)" when a detail is given.
func NotFound(w http.ResponseWriter, detail string) {
	body := "Not found"
	if detail != "" {
		body = fmt.Sprintf("Not found (%s)", detail)
	}
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(body))
}

// BadRequest writes a 400 with a plain-text message.
func BadRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write([]byte(message))
}

// InternalError writes a 500 with a plain-text message.
func InternalError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(message))
}

// JSON writes a JSON response with the given status code. Used by the
// health endpoint.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding errors are ignored as headers are already sent (best effort)
	_ = json.NewEncoder(w).Encode(payload)
}

// FromError maps typed service errors to HTTP responses.
func FromError(w http.ResponseWriter, err error) {
	switch {
	case errors.IsNotFound(err):
		NotFound(w, "")
	case errors.IsValidationError(err):
		BadRequest(w, err.Error())
	case errors.IsUpstream(err):
		InternalError(w, err.Error())
	case errors.IsTransform(err):
		InternalError(w, err.Error())
	default:
		InternalError(w, "")
	}
}
