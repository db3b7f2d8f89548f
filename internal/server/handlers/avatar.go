package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/opencollective/images/internal/graph"
	"github.com/opencollective/images/internal/imgproc"
	"github.com/opencollective/images/internal/server/cache"
	"github.com/opencollective/images/internal/server/response"
	"github.com/opencollective/images/pkg/logging"
)

// Avatar size defaults and tier escalation multipliers.
const (
	avatarDefaultHeightSVG = 128
	avatarDefaultHeight    = 64

	avatarCacheMaxAge = 300
)

// avatarSVGWidth is the fixed inline-SVG render width for non-sponsor
// selectors. Sponsor logos keep their aspect ratio instead.
const avatarSVGWidth = 64

// Avatar serves a single member avatar by ordinal position.
// GET /{collectiveSlug}/{backerType}/avatar/{position}.{format}
// GET /{collectiveSlug}/tier/{tierSlug}/avatar/{position}.{format}
func (h *Handlers) Avatar(w http.ResponseWriter, r *http.Request, slug, backerType, tierSlug, positionStr, format string) {
	logger := logging.Ctx(r.Context())
	q := r.URL.Query()

	position, err := strconv.Atoi(positionStr)
	if err != nil || position < 0 {
		response.BadRequest(w, "Invalid position")
		return
	}

	// Active members only, unless the caller explicitly opts in to all.
	isActive := q.Get("isActive") != "false"

	members, err := h.membersFor(r.Context(), cache.MembersKey{
		CollectiveSlug: slug,
		BackerType:     backerType,
		TierSlug:       tierSlug,
		IsActive:       isActive,
	})
	if err != nil {
		logger.Warn().Err(err).
			Str("collective", slug).
			Str("backerType", backerType).
			Str("tierSlug", tierSlug).
			Msg("Failed to fetch members for avatar")
		response.NotFound(w, "")
		return
	}

	selector := selectorFor(backerType, tierSlug)
	width, height := avatarSize(q, selector, format)

	// Position selection: one past the last member renders the
	// "become a backer/sponsor" button, anything beyond that a 1x1
	// transparent placeholder so galleries can over-request positions.
	var member graph.Member
	var src string
	switch {
	case position > len(members):
		src = placeholderAsset
	case position == len(members):
		src = buttonAsset(selector)
	default:
		member = members[position]
		src = member.Image
		if src == "" {
			src = placeholderAsset
		}
	}

	// Local asset paths are served by the static images host directly.
	if strings.HasPrefix(src, "/") {
		http.Redirect(w, r, h.staticURL(src), http.StatusFound)
		return
	}

	imageURL := h.cdn.AvatarURL(src, member.Type, width, height)

	if format == "svg" {
		h.serveInlineSVG(w, r, imageURL, selector, height)
		return
	}

	data, err := h.fetch.FetchBytes(r.Context(), imageURL)
	if err != nil {
		logger.Error().Err(err).Str("url", imageURL).Msg("Failed to fetch avatar image")
		response.FromError(w, err)
		return
	}

	response.CachePublic(w, avatarCacheMaxAge)
	response.Bytes(w, contentTypeFor(format), data)
}

// serveInlineSVG fetches the avatar bytes and embeds them as a base64 data
// URI in a minimal SVG wrapper.
func (h *Handlers) serveInlineSVG(w http.ResponseWriter, r *http.Request, imageURL, selector string, height int) {
	logger := logging.Ctx(r.Context())

	data, err := h.fetch.FetchBytes(r.Context(), imageURL)
	if err != nil {
		logger.Error().Err(err).Str("url", imageURL).Msg("Failed to fetch avatar image")
		response.FromError(w, err)
		return
	}

	renderHeight := height / 2
	renderWidth := avatarSVGWidth
	if isSponsorLike(selector) {
		// Sponsor logos are wide marks, so the render width follows the
		// source aspect ratio at the target height.
		iw, ih, err := imgproc.Dimensions(data)
		if err != nil || ih == 0 {
			logger.Error().Err(err).Str("url", imageURL).Msg("Failed to read avatar image dimensions")
			response.InternalError(w, "Unable to read image dimensions")
			return
		}
		renderWidth = iw * renderHeight / ih
	}

	response.SVG(w, imgproc.InlineSVG(data, renderWidth, renderHeight))
}

// avatarSize resolves the target avatar box. An explicit avatarHeight wins
// as-is; otherwise the format default escalates with the tier level and the
// width opens up to three times the height for wide logos.
func avatarSize(q url.Values, selector, format string) (width, height int) {
	if v := q.Get("avatarHeight"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return 0, n
		}
	}

	h := avatarDefaultHeight
	if format == "svg" {
		h = avatarDefaultHeightSVG
	}

	lower := strings.ToLower(selector)
	switch {
	case strings.Contains(lower, "silver"):
		h = h * 125 / 100
	case strings.Contains(lower, "gold"):
		h = h * 150 / 100
	case strings.Contains(lower, "diamond"):
		h = h * 200 / 100
	}

	return h * 3, h
}
