package handlers

import (
	"net/http"

	"github.com/opencollective/images/internal/banner"
	"github.com/opencollective/images/internal/imgproc"
	"github.com/opencollective/images/internal/server/cache"
	"github.com/opencollective/images/internal/server/response"
	"github.com/opencollective/images/pkg/logging"
)

// bannerCacheMaxAge is the banner cache lifetime in seconds.
const bannerCacheMaxAge = 300

// Banner serves the members banner as SVG or PNG.
// GET /{collectiveSlug}/{backerType}/banner.{format}
// GET /{collectiveSlug}/tier/{tierSlug}/banner.{format}
func (h *Handlers) Banner(w http.ResponseWriter, r *http.Request, slug, backerType, tierSlug, format string) {
	logger := logging.Ctx(r.Context())

	members, err := h.membersFor(r.Context(), cache.MembersKey{
		CollectiveSlug: slug,
		BackerType:     backerType,
		TierSlug:       tierSlug,
		IsActive:       true,
	})
	if err != nil {
		logger.Warn().Err(err).
			Str("collective", slug).
			Str("backerType", backerType).
			Str("tierSlug", tierSlug).
			Msg("Failed to fetch members for banner")
		response.NotFound(w, "")
		return
	}

	q := r.URL.Query()
	selector := selectorFor(backerType, tierSlug)

	// Contributor and sponsor banners embed in READMEs where per-member
	// links render poorly, so profile links are suppressed there.
	linkToProfile := selector != "contributors" && selector != "sponsors"

	buttonImage := ""
	if parseBool(q, "button", true) {
		buttonImage = h.staticURL(buttonAsset(selector))
	}

	opts := banner.Options{
		Width:          parseInt(q, "width", banner.DefaultWidth),
		Height:         parseInt(q, "height", 0),
		AvatarHeight:   parseInt(q, "avatarHeight", banner.DefaultAvatarHeight),
		Margin:         parseInt(q, "margin", banner.DefaultMargin),
		Limit:          parseInt(q, "limit", 0),
		Style:          q.Get("style"),
		LinkToProfile:  linkToProfile,
		ButtonImage:    buttonImage,
		ProfileBaseURL: h.config.WebsiteURL,
	}

	svg, err := banner.Render(members, h.cdn, opts)
	if err != nil {
		logger.Error().Err(err).Str("collective", slug).Msg("Failed to generate banner")
		response.InternalError(w, "Unable to generate banner")
		return
	}

	if format == "png" {
		png, err := imgproc.RasterizeSVG(svg, 0, 0)
		if err != nil {
			logger.Error().Err(err).Str("collective", slug).Msg("Failed to rasterize banner")
			response.InternalError(w, "Unable to generate banner")
			return
		}
		response.CachePublic(w, bannerCacheMaxAge)
		response.PNG(w, png)
		return
	}

	response.CachePublic(w, bannerCacheMaxAge)
	response.SVG(w, svg)
}
