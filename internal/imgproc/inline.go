package imgproc

import (
	"encoding/base64"
	"fmt"
	"net/http"
)

// InlineSVG wraps raw image bytes as a base64 data URI inside a minimal SVG
// document of the given size. The source bytes are embedded unchanged.
func InlineSVG(data []byte, width, height int) []byte {
	contentType := http.DetectContentType(data)
	encoded := base64.StdEncoding.EncodeToString(data)
	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d">`+
			`<image width="%d" height="%d" xlink:href="data:%s;base64,%s"/>`+
			`</svg>`,
		width, height, width, height, contentType, encoded))
}
