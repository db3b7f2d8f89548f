// Package shields builds badge image URLs for the shields.io rendering
// service.
package shields

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the public shields.io endpoint.
const DefaultBaseURL = "https://img.shields.io"

// BadgeURL builds a shields.io badge URL for the given label, value and
// color. Style is appended as a query parameter when set.
func BadgeURL(baseURL, label, value, color, style string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	url := fmt.Sprintf("%s/badge/%s-%s-%s.svg",
		strings.TrimSuffix(baseURL, "/"), Escape(label), Escape(value), Escape(color))
	if style != "" {
		url += "?style=" + style
	}
	return url
}

// Escape encodes a badge segment per the shields.io rules: literal
// underscores and dashes are doubled, spaces become underscores.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, "-", "--")
	return strings.ReplaceAll(s, " ", "_")
}
