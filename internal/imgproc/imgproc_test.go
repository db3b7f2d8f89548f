package imgproc

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/opencollective/images/pkg/errors"
)

// testPNG encodes a solid-color image of the given size.
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestResizeFitsBothDimensions(t *testing.T) {
	src := testPNG(t, 100, 50)

	var out bytes.Buffer
	if err := Resize(&out, src, 40, 40, "png"); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("decode resized image: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 20 {
		t.Errorf("resized to %dx%d, want 40x20 (aspect preserved)", cfg.Width, cfg.Height)
	}
}

func TestResizePassthroughWithoutDimensions(t *testing.T) {
	src := testPNG(t, 30, 30)

	var out bytes.Buffer
	if err := Resize(&out, src, 0, 0, "jpg"); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("decode converted image: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("output format = %q, want jpeg", format)
	}
	if cfg.Width != 30 || cfg.Height != 30 {
		t.Errorf("converted to %dx%d, want 30x30", cfg.Width, cfg.Height)
	}
}

func TestResizeRejectsGarbage(t *testing.T) {
	var out bytes.Buffer
	err := Resize(&out, []byte("not an image"), 10, 10, "png")
	if err == nil {
		t.Fatal("Resize() expected error for undecodable input")
	}
	if !errors.IsTransform(err) {
		t.Errorf("expected transform error, got %v", err)
	}
}

func TestAsciiRendersText(t *testing.T) {
	src := testPNG(t, 16, 16)

	text, err := Ascii(src, AsciiOptions{Width: 8, Height: 4, Trim: true})
	if err != nil {
		t.Fatalf("Ascii() error = %v", err)
	}
	if text == "" {
		t.Fatal("Ascii() returned empty output")
	}
	if lines := strings.Split(text, "\n"); len(lines) > 4 {
		t.Errorf("Ascii() produced %d lines, want at most 4", len(lines))
	}
}

func TestTrimBlankLines(t *testing.T) {
	in := "\n  \nabc\ndef\n   \n"
	if got := trimBlankLines(in); got != "abc\ndef" {
		t.Errorf("trimBlankLines(%q) = %q, want %q", in, got, "abc\ndef")
	}
}

func TestDimensions(t *testing.T) {
	src := testPNG(t, 120, 40)
	w, h, err := Dimensions(src)
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if w != 120 || h != 40 {
		t.Errorf("Dimensions() = %dx%d, want 120x40", w, h)
	}
}

func TestDimensionsRejectsSVG(t *testing.T) {
	_, _, err := Dimensions([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	if err == nil {
		t.Fatal("Dimensions() expected error for SVG input")
	}
	if !errors.IsTransform(err) {
		t.Errorf("expected transform error, got %v", err)
	}
}

func TestRasterizeSVG(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="#336699"/></svg>`)

	out, err := RasterizeSVG(svg, 20, 20)
	if err != nil {
		t.Fatalf("RasterizeSVG() error = %v", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode rasterized png: %v", err)
	}
	if format != "png" {
		t.Errorf("output format = %q, want png", format)
	}
	if cfg.Width != 20 || cfg.Height != 20 {
		t.Errorf("rasterized to %dx%d, want 20x20", cfg.Width, cfg.Height)
	}
}

func TestInlineSVGEmbedsSourceBytes(t *testing.T) {
	src := testPNG(t, 4, 4)

	out := InlineSVG(src, 64, 32)
	doc := string(out)

	if !strings.Contains(doc, `width="64" height="32"`) {
		t.Errorf("InlineSVG() missing dimensions, got %q", doc)
	}
	encoded := base64.StdEncoding.EncodeToString(src)
	if !strings.Contains(doc, encoded) {
		t.Error("InlineSVG() does not embed the source bytes unchanged")
	}
	if !strings.Contains(doc, "data:image/png;base64,") {
		t.Errorf("InlineSVG() missing data URI prefix, got %q", doc[:100])
	}
}
