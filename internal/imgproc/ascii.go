package imgproc

import (
	"bytes"
	"image"
	"strings"

	"github.com/qeesung/image2ascii/convert"

	"github.com/opencollective/images/pkg/errors"
)

// AsciiVariant selects the character aspect handling of the ASCII renderer.
type AsciiVariant string

// Supported ASCII variants.
const (
	VariantWide   AsciiVariant = "wide"
	VariantSquare AsciiVariant = "square"
)

// AsciiOptions configures ASCII-art rendering. Flags come from query
// parameters parsed as literal "true"/"false" strings with explicit
// defaults (see handlers/params.go).
type AsciiOptions struct {
	Width   int
	Height  int
	Colored bool
	Reverse bool
	Trim    bool
	Variant AsciiVariant
	WhiteBg bool
	Bg      bool
	Fg      bool
}

// Ascii renders image data as ASCII art text.
func Ascii(data []byte, opts AsciiOptions) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errors.WrapTransform("ascii decode", err)
	}

	converted := convert.DefaultOptions
	converted.FitScreen = false
	// Color only applies when at least one of the foreground/background
	// channels is requested.
	converted.Colored = opts.Colored && (opts.Fg || opts.Bg)
	// A white background flips the luminance mapping, so it composes with
	// the explicit reverse flag as an XOR.
	converted.Reversed = opts.Reverse != opts.WhiteBg
	if opts.Width > 0 {
		converted.FixedWidth = opts.Width
	}
	if opts.Height > 0 {
		converted.FixedHeight = opts.Height
	}
	// Terminal glyphs are roughly twice as tall as wide; the square
	// variant compensates, the wide variant keeps the stretch.
	if opts.Variant == VariantSquare {
		converted.Ratio = 0.5
	}

	text := convert.NewImageConverter().Image2ASCIIString(img, &converted)
	if opts.Trim {
		text = trimBlankLines(text)
	}
	return text, nil
}

// trimBlankLines removes leading and trailing all-whitespace lines.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
