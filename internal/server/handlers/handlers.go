// Package handlers implements the HTTP handlers for the image endpoints:
// badge, logo, background, banner, and avatar, plus the health check. Each
// handler is a short pipeline of graph lookup, upstream fetch, transform,
// and response.
package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/opencollective/images/internal/graph"
	"github.com/opencollective/images/internal/imagecdn"
	"github.com/opencollective/images/internal/server/cache"
)

// GraphService is the graph API surface the handlers consume.
type GraphService interface {
	Collective(ctx context.Context, slug string) (graph.Collective, error)
	Members(ctx context.Context, query graph.MembersQuery) ([]graph.Member, error)
	MembersStats(ctx context.Context, slug, backerType, tierSlug string) (graph.MembersStats, error)
}

// Fetcher retrieves upstream resources over HTTP.
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
	FetchText(ctx context.Context, url string) (string, error)
}

// Config holds the endpoint settings the handlers need.
type Config struct {
	// ImagesURL is the base URL for local static assets (buttons,
	// placeholders).
	ImagesURL string

	// WebsiteURL is the public site base URL for profile links.
	WebsiteURL string

	// ShieldsURL overrides the badge rendering service base URL. Empty
	// selects the shields.io default.
	ShieldsURL string
}

// Handlers holds the dependencies shared by all image endpoints.
type Handlers struct {
	graph     GraphService
	fetch     Fetcher
	members   *cache.Members
	cdn       *imagecdn.CDN
	logger    *zerolog.Logger
	config    Config
	startTime time.Time
}

// New creates the handler set.
func New(g GraphService, f Fetcher, members *cache.Members, cdn *imagecdn.CDN, logger *zerolog.Logger, config Config) *Handlers {
	return &Handlers{
		graph:     g,
		fetch:     f,
		members:   members,
		cdn:       cdn,
		logger:    logger,
		config:    config,
		startTime: time.Now(),
	}
}

// membersFor returns the member list for the key, reading through the cache.
// A miss fetches from the graph API and populates the cache unconditionally;
// racing identical misses are last-writer-wins.
func (h *Handlers) membersFor(ctx context.Context, key cache.MembersKey) ([]graph.Member, error) {
	if members, ok := h.members.Get(key); ok {
		return members, nil
	}

	members, err := h.graph.Members(ctx, graph.MembersQuery{
		CollectiveSlug: key.CollectiveSlug,
		BackerType:     key.BackerType,
		TierSlug:       key.TierSlug,
		IsActive:       key.IsActive,
	})
	if err != nil {
		return nil, err
	}

	h.members.Set(key, members)
	return members, nil
}

// selectorFor returns the tier slug when set, the backer type otherwise.
func selectorFor(backerType, tierSlug string) string {
	if tierSlug != "" {
		return tierSlug
	}
	return backerType
}

// isSponsorLike reports whether the selector addresses sponsors.
func isSponsorLike(selector string) bool {
	return strings.Contains(strings.ToLower(selector), "sponsor")
}

// buttonAsset returns the local path of the "become a backer/sponsor"
// button image for the selector.
func buttonAsset(selector string) string {
	if isSponsorLike(selector) {
		return "/static/images/become_sponsor.svg"
	}
	return "/static/images/become_backer.svg"
}

// placeholderAsset is the local path of the 1x1 transparent placeholder.
const placeholderAsset = "/static/images/1px.png"

// staticURL resolves a local asset path against the images base URL.
func (h *Handlers) staticURL(path string) string {
	return strings.TrimSuffix(h.config.ImagesURL, "/") + path
}
