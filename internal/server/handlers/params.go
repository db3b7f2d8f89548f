package handlers

import (
	"net/url"
	"strconv"

	"github.com/opencollective/images/internal/imgproc"
)

// parseBool reads a boolean-string query parameter. Only the literal
// strings "true" and "false" are accepted; anything else, including a
// missing parameter, yields the default.
func parseBool(q url.Values, key string, def bool) bool {
	switch q.Get(key) {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// parseInt reads a positive integer query parameter, falling back to the
// default on missing or unparseable values.
func parseInt(q url.Values, key string, def int) int {
	v := q.Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// parseAsciiOptions builds the ASCII renderer flags from query parameters.
// Defaults render a colored image on a white terminal background.
func parseAsciiOptions(q url.Values) imgproc.AsciiOptions {
	variant := imgproc.VariantWide
	if q.Get("variant") == string(imgproc.VariantSquare) {
		variant = imgproc.VariantSquare
	}
	return imgproc.AsciiOptions{
		Width:   parseInt(q, "width", 0),
		Height:  parseInt(q, "height", 0),
		Colored: parseBool(q, "colored", true),
		Reverse: parseBool(q, "reverse", false),
		Trim:    parseBool(q, "trim", false),
		Variant: variant,
		WhiteBg: parseBool(q, "white_bg", true),
		Bg:      parseBool(q, "bg", false),
		Fg:      parseBool(q, "fg", false),
	}
}

// contentTypeFor maps an output format extension to a content type. Empty
// means sniff from the bytes.
func contentTypeFor(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "svg":
		return "image/svg+xml; charset=utf-8"
	default:
		return ""
	}
}
