package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestFromContextDefault(t *testing.T) {
	if FromContext(context.Background()) != Default() {
		t.Error("FromContext without logger should return the default logger")
	}
	if FromContext(nil) != Default() { //nolint:staticcheck // nil context on purpose
		t.Error("FromContext(nil) should return the default logger")
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	Ctx(ctx).Info().Msg("hello")

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected log output to contain %q, got %q", "hello", buf.String())
	}
}

func TestWithCollective(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	ctx = WithCollective(ctx, "webpack")
	Ctx(ctx).Info().Msg("fetch")

	if !strings.Contains(buf.String(), `"collective":"webpack"`) {
		t.Errorf("expected collective field in output, got %q", buf.String())
	}
}
