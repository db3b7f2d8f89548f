package handlers

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/opencollective/images/internal/server/response"
	"github.com/opencollective/images/internal/shields"
	"github.com/opencollective/images/pkg/logging"
)

// Badge cache lifetimes in seconds.
const (
	badgeCacheMaxAge      = 600
	badgeErrorCacheMaxAge = 30
)

// countPrinter formats member counts with thousands separators.
var countPrinter = message.NewPrinter(language.English)

// Badge serves the member-count badge for a backer type or tier.
// GET /{collectiveSlug}/{backerType}/badge.svg
// GET /{collectiveSlug}/tier/{tierSlug}/badge.svg
func (h *Handlers) Badge(w http.ResponseWriter, r *http.Request, slug, backerType, tierSlug, format string) {
	logger := logging.Ctx(r.Context())

	if format != "svg" {
		response.NotFound(w, "")
		return
	}

	stats, err := h.graph.MembersStats(r.Context(), slug, backerType, tierSlug)
	if err != nil {
		logger.Warn().Err(err).
			Str("collective", slug).
			Str("backerType", backerType).
			Str("tierSlug", tierSlug).
			Msg("Failed to fetch member stats for badge")
		response.NotFound(w, "")
		return
	}

	q := r.URL.Query()
	label := q.Get("label")
	if label == "" {
		label = stats.Name
	}
	color := q.Get("color")
	if color == "" {
		color = "brightgreen"
	}

	count := countPrinter.Sprintf("%d", stats.Count)
	badgeURL := shields.BadgeURL(h.config.ShieldsURL, label, count, color, q.Get("style"))

	svg, err := h.fetch.FetchText(r.Context(), badgeURL)
	if err != nil {
		logger.Error().Err(err).Str("url", badgeURL).Msg("Failed to fetch badge")
		response.CacheFor(w, badgeErrorCacheMaxAge)
		response.InternalError(w, fmt.Sprintf("Unable to fetch %s", badgeURL))
		return
	}

	response.CacheFor(w, badgeCacheMaxAge)
	response.SVG(w, []byte(svg))
}
