package server

import (
	"net/http"
	"strings"

	"github.com/opencollective/images/internal/server/handlers"
	"github.com/opencollective/images/internal/server/middleware"
	"github.com/opencollective/images/internal/server/response"
)

// routeKind identifies which image endpoint a path addresses.
type routeKind int

// Image endpoint kinds.
const (
	routeNone routeKind = iota
	routeLogo
	routeBackground
	routeBadge
	routeBanner
	routeAvatar
)

// route is a parsed image endpoint path.
type route struct {
	kind       routeKind
	slug       string
	backerType string
	tierSlug   string
	position   string
	format     string
}

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.graph, s.fetch, s.members, s.cdn, s.logger, handlers.Config{
		ImagesURL:  s.config.ImagesURL,
		WebsiteURL: s.config.WebsiteURL,
		ShieldsURL: s.config.ShieldsURL,
	})

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/health", h.Health)

	// The image endpoints all hang off the collective slug, so dispatch is
	// by path shape rather than fixed patterns.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		rt, ok := parseRoute(r.URL.Path)
		if !ok {
			response.NotFound(w, "")
			return
		}

		switch rt.kind {
		case routeLogo:
			h.Logo(w, r, rt.slug, rt.format)
		case routeBackground:
			h.Background(w, r, rt.slug, rt.format)
		case routeBadge:
			h.Badge(w, r, rt.slug, rt.backerType, rt.tierSlug, rt.format)
		case routeBanner:
			h.Banner(w, r, rt.slug, rt.backerType, rt.tierSlug, rt.format)
		case routeAvatar:
			h.Avatar(w, r, rt.slug, rt.backerType, rt.tierSlug, rt.position, rt.format)
		default:
			response.NotFound(w, "")
		}
	})
}

// parseRoute maps a URL path to an image endpoint:
//
//	/{slug}/logo.{format}
//	/{slug}/background.{format}
//	/{slug}/{backerType}/badge.{format}
//	/{slug}/{backerType}/banner.{format}
//	/{slug}/{backerType}/avatar/{position}.{format}
//	/{slug}/tier/{tierSlug}/badge|banner.{format}
//	/{slug}/tier/{tierSlug}/avatar/{position}.{format}
func parseRoute(path string) (route, bool) {
	parts := splitPath(path)
	if len(parts) < 2 {
		return route{}, false
	}

	rt := route{slug: parts[0]}
	rest := parts[1:]

	switch {
	case len(rest) == 1:
		name, format, ok := splitExt(rest[0])
		if !ok {
			return route{}, false
		}
		rt.format = format
		switch name {
		case "logo":
			rt.kind = routeLogo
		case "background":
			rt.kind = routeBackground
		default:
			return route{}, false
		}

	case len(rest) == 2 && rest[0] != "tier":
		rt.backerType = rest[0]
		name, format, ok := splitExt(rest[1])
		if !ok {
			return route{}, false
		}
		rt.format = format
		switch name {
		case "badge":
			rt.kind = routeBadge
		case "banner":
			rt.kind = routeBanner
		default:
			return route{}, false
		}

	case len(rest) == 3 && rest[0] == "tier":
		rt.tierSlug = rest[1]
		name, format, ok := splitExt(rest[2])
		if !ok {
			return route{}, false
		}
		rt.format = format
		switch name {
		case "badge":
			rt.kind = routeBadge
		case "banner":
			rt.kind = routeBanner
		default:
			return route{}, false
		}

	case len(rest) == 3 && rest[1] == "avatar":
		rt.backerType = rest[0]
		position, format, ok := splitExt(rest[2])
		if !ok {
			return route{}, false
		}
		rt.kind = routeAvatar
		rt.position = position
		rt.format = format

	case len(rest) == 4 && rest[0] == "tier" && rest[2] == "avatar":
		rt.tierSlug = rest[1]
		position, format, ok := splitExt(rest[3])
		if !ok {
			return route{}, false
		}
		rt.kind = routeAvatar
		rt.position = position
		rt.format = format

	default:
		return route{}, false
	}

	return rt, true
}

// applyMiddleware wraps handler with middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	// Rate limiting (if enabled)
	if cfg.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, s.logger)
		handler = middleware.RateLimit(rateLimiter)(handler)
	}

	// CORS (if enabled)
	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Logging and recovery (always enabled)
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// splitExt splits "badge.svg" into ("badge", "svg").
func splitExt(file string) (name, ext string, ok bool) {
	i := strings.LastIndex(file, ".")
	if i <= 0 || i == len(file)-1 {
		return "", "", false
	}
	return file[:i], file[i+1:], true
}

// splitPath splits a URL path into parts, removing empty strings.
func splitPath(path string) []string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
