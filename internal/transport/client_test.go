package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opencollective/images/pkg/errors"
)

func TestFetchBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.Client())
	body, err := c.FetchBytes(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchBytes() error = %v", err)
	}
	if string(body) != "payload" {
		t.Errorf("FetchBytes() = %q, want %q", body, "payload")
	}
}

func TestFetchBytesUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.Client())
	_, err := c.FetchBytes(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("FetchBytes() expected error for 502 response")
	}
	if !errors.IsUpstream(err) {
		t.Errorf("expected upstream error, got %v", err)
	}

	var upstream *errors.UpstreamError
	if !errorsAs(err, &upstream) || upstream.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502 in error, got %v", err)
	}
}

func TestFetchText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<svg/>"))
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.Client())
	text, err := c.FetchText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchText() error = %v", err)
	}
	if text != "<svg/>" {
		t.Errorf("FetchText() = %q, want %q", text, "<svg/>")
	}
}

func TestFetchBytesConnectionRefused(t *testing.T) {
	c := New()
	_, err := c.FetchBytes(context.Background(), "http://127.0.0.1:1/unreachable")
	if err == nil {
		t.Fatal("FetchBytes() expected error for unreachable host")
	}
	if !errors.IsUpstream(err) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

// errorsAs is a test-local alias to keep the stdlib errors import out of a
// file that already imports the service errors package.
func errorsAs(err error, target any) bool {
	return errors.As(err, target)
}
