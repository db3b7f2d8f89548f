package imgproc

import (
	"bytes"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/opencollective/images/pkg/errors"
)

// RasterizeSVG renders SVG markup into a PNG. Zero width/height use the
// document's own viewBox dimensions.
func RasterizeSVG(svg []byte, width, height int) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, errors.WrapTransform("svg parse", err)
	}

	if width <= 0 {
		width = int(icon.ViewBox.W)
	}
	if height <= 0 {
		height = int(icon.ViewBox.H)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.NewTransformError("rasterize", errors.New("svg has no intrinsic size"))
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, errors.WrapTransform("png encode", err)
	}
	return buf.Bytes(), nil
}
