package response

import (
	"net/http/httptest"
	"testing"

	"github.com/opencollective/images/pkg/errors"
)

func TestNotFoundBodies(t *testing.T) {
	tests := []struct {
		detail string
		want   string
	}{
		{"", "Not found"},
		{"No collective image", "Not found (No collective image)"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		NotFound(rec, tt.detail)
		if rec.Code != 404 {
			t.Errorf("NotFound(%q) status = %d, want 404", tt.detail, rec.Code)
		}
		if rec.Body.String() != tt.want {
			t.Errorf("NotFound(%q) body = %q, want %q", tt.detail, rec.Body.String(), tt.want)
		}
	}
}

func TestCacheHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	CacheFor(rec, 600)
	if got := rec.Header().Get("Cache-Control"); got != "max-age=600" {
		t.Errorf("CacheFor header = %q", got)
	}

	rec = httptest.NewRecorder()
	CachePublic(rec, 5184000)
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=5184000" {
		t.Errorf("CachePublic header = %q", got)
	}
}

func TestSVG(t *testing.T) {
	rec := httptest.NewRecorder()
	SVG(rec, []byte("<svg/>"))
	if got := rec.Header().Get("Content-Type"); got != ContentTypeSVG {
		t.Errorf("content type = %q", got)
	}
	if rec.Body.String() != "<svg/>" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestBytesSniffsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	Bytes(rec, "", []byte("\x89PNG\r\n\x1a\n000000000000"))
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("sniffed content type = %q, want image/png", got)
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", errors.NewNotFoundError("collective", "x"), 404, "Not found"},
		{"validation", errors.NewValidationError("position", "abc", "must be a number"), 400, "validation failed for field position: must be a number"},
		{"upstream", errors.NewUpstreamError("https://example.com", 502, nil), 500, "fetch https://example.com failed with status 502"},
		{"unknown", errors.New("boom"), 500, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FromError(rec, tt.err)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if rec.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.body)
			}
		})
	}
}
