// Package imagecdn builds image-CDN fetch URLs with inline transform
// segments (Cloudinary URL conventions). Person avatars get a face-aware
// square crop; organization logos get plain width/height scaling.
package imagecdn

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/opencollective/images/internal/graph"
)

// DefaultBaseURL is the production fetch endpoint.
const DefaultBaseURL = "https://res.cloudinary.com/opencollective/image/fetch"

// CDN templates transform URLs against one base endpoint.
type CDN struct {
	baseURL string
}

// New creates a CDN helper for the given base fetch URL.
func New(baseURL string) *CDN {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &CDN{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// AvatarURL returns the transformed URL for a member image. Persons are
// cropped to a face-centered square of the target height; organizations are
// scaled to fit the requested box. A zero width falls back to the height.
func (c *CDN) AvatarURL(src string, memberType graph.MemberType, width, height int) string {
	if width <= 0 {
		width = height
	}

	var transform string
	if memberType.IsOrganization() {
		transform = fmt.Sprintf("c_fit,w_%d,h_%d", width, height)
	} else {
		transform = fmt.Sprintf("c_thumb,g_face,w_%d,h_%d", height, height)
	}

	return fmt.Sprintf("%s/%s/%s", c.baseURL, transform, url.QueryEscape(src))
}
