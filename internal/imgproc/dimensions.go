package imgproc

import (
	"bytes"
	"image"

	// Registered decoders for dimension sniffing and resizing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/opencollective/images/pkg/errors"
)

// Dimensions reads the pixel width and height of encoded image data without
// decoding the full image.
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, errors.WrapTransform("read dimensions", err)
	}
	return cfg.Width, cfg.Height, nil
}
