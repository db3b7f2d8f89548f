// Package banner composes the members banner: a grid of avatar images with
// optional profile links and a trailing "become a backer/sponsor" button.
package banner

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/opencollective/images/internal/graph"
	"github.com/opencollective/images/internal/imagecdn"
)

// Defaults for banner layout.
const (
	DefaultWidth        = 600
	DefaultAvatarHeight = 64
	DefaultMargin       = 5
)

// Options configures one banner rendering.
type Options struct {
	Width          int
	Height         int
	AvatarHeight   int
	Margin         int
	Limit          int // 0 renders every member
	Style          string
	LinkToProfile  bool
	ButtonImage    string // empty hides the button
	ProfileBaseURL string
}

// Render composes the banner SVG for the given members. Members without an
// image still occupy a cell so positions stay stable across selectors.
func Render(members []graph.Member, cdn *imagecdn.CDN, opts Options) ([]byte, error) {
	if cdn == nil {
		return nil, fmt.Errorf("banner: nil image CDN")
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.AvatarHeight <= 0 {
		opts.AvatarHeight = DefaultAvatarHeight
	}
	if opts.Margin < 0 {
		opts.Margin = DefaultMargin
	}
	if opts.Limit > 0 && len(members) > opts.Limit {
		members = members[:opts.Limit]
	}

	cell := opts.AvatarHeight + opts.Margin
	columns := opts.Width / cell
	if columns < 1 {
		columns = 1
	}

	// The button occupies one trailing wide cell spanning three columns.
	cells := len(members)
	buttonColumns := 0
	if opts.ButtonImage != "" {
		buttonColumns = 3
	}
	rows := (cells + buttonColumns + columns - 1) / columns
	if rows < 1 {
		rows = 1
	}

	height := opts.Height
	if height <= 0 {
		height = rows*cell + opts.Margin
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(opts.Width, height)

	x, y := opts.Margin, opts.Margin
	advance := func() {
		x += cell
		if x+opts.AvatarHeight > opts.Width {
			x = opts.Margin
			y += cell
		}
	}

	for _, m := range members {
		if m.Image != "" {
			href := cdn.AvatarURL(m.Image, m.Type, 0, opts.AvatarHeight)
			linked := opts.LinkToProfile && m.Slug != ""
			if linked {
				canvas.Link(profileURL(opts.ProfileBaseURL, m.Slug), m.Name)
			}
			canvas.Image(x, y, opts.AvatarHeight, opts.AvatarHeight, href)
			if linked {
				canvas.LinkEnd()
			}
		}
		advance()
	}

	if opts.ButtonImage != "" {
		buttonWidth := opts.AvatarHeight * 3
		if x+buttonWidth > opts.Width {
			x = opts.Margin
			y += cell
		}
		canvas.Image(x, y, buttonWidth, opts.AvatarHeight, opts.ButtonImage)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// profileURL builds the public profile link for a member slug.
func profileURL(baseURL, slug string) string {
	if baseURL == "" {
		baseURL = "https://opencollective.com"
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + slug
}
