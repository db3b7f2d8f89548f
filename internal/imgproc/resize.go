// Package imgproc wraps the image transform libraries behind the small
// operations the handlers need: resize/convert, ASCII rendering, SVG
// rasterization, dimension sniffing, and inline SVG wrapping.
package imgproc

import (
	"bytes"
	"io"

	"github.com/disintegration/imaging"

	"github.com/opencollective/images/pkg/errors"
)

// Resize decodes data, scales it to the requested box, and writes it in the
// requested output format. Zero width and height stream the image at its
// source size. A single non-zero dimension preserves the aspect ratio.
func Resize(w io.Writer, data []byte, width, height int, format string) error {
	outFormat, err := imaging.FormatFromExtension(format)
	if err != nil {
		return errors.WrapTransform("format "+format, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return errors.WrapTransform("decode", err)
	}

	switch {
	case width > 0 && height > 0:
		img = imaging.Fit(img, width, height, imaging.Lanczos)
	case width > 0 || height > 0:
		img = imaging.Resize(img, width, height, imaging.Lanczos)
	}

	if err := imaging.Encode(w, img, outFormat); err != nil {
		return errors.WrapTransform("encode "+format, err)
	}
	return nil
}
