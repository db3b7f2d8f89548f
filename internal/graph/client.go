package graph

import (
	"context"
	"net/http"
	"strings"

	graphql "github.com/hasura/go-graphql-client"

	"github.com/opencollective/images/pkg/errors"
)

// noCollectiveMessage is the error message the graph API returns for an
// unknown collective slug.
const noCollectiveMessage = "No collective found"

// Client queries the graph API.
type Client struct {
	gql *graphql.Client
}

// New creates a graph client against the given API endpoint. A nil
// httpClient falls back to http.DefaultClient.
func New(apiURL string, httpClient *http.Client) *Client {
	return &Client{
		gql: graphql.NewClient(apiURL, httpClient),
	}
}

// memberFields is the member selection shared by all member queries.
type memberFields struct {
	Name  string `graphql:"name"`
	Slug  string `graphql:"slug"`
	Image string `graphql:"image"`
	Type  string `graphql:"type"`
}

// Collective returns the image metadata for one collective.
// An unknown slug yields errors.ErrNotFound.
func (c *Client) Collective(ctx context.Context, slug string) (Collective, error) {
	var q struct {
		Collective struct {
			Slug            string `graphql:"slug"`
			Image           string `graphql:"image"`
			BackgroundImage string `graphql:"backgroundImage"`
		} `graphql:"Collective(slug: $collectiveSlug)"`
	}

	vars := map[string]interface{}{
		"collectiveSlug": slug,
	}
	if err := c.gql.Query(ctx, &q, vars); err != nil {
		return Collective{}, mapQueryError(slug, err)
	}

	return Collective{
		Slug:            q.Collective.Slug,
		Image:           q.Collective.Image,
		BackgroundImage: q.Collective.BackgroundImage,
	}, nil
}

// Members returns the ordered membership list for the query selector.
// An unknown collective yields errors.ErrNotFound.
func (c *Client) Members(ctx context.Context, query MembersQuery) ([]Member, error) {
	var raw []memberFields

	if query.TierSlug != "" {
		var q struct {
			Collective struct {
				Members []memberFields `graphql:"members(tierSlug: $tierSlug, isActive: $isActive, limit: $limit)"`
			} `graphql:"Collective(slug: $collectiveSlug)"`
		}
		vars := map[string]interface{}{
			"collectiveSlug": query.CollectiveSlug,
			"tierSlug":       query.TierSlug,
			"isActive":       query.IsActive,
			"limit":          query.Limit,
		}
		if err := c.gql.Query(ctx, &q, vars); err != nil {
			return nil, mapQueryError(query.CollectiveSlug, err)
		}
		raw = q.Collective.Members
	} else {
		var q struct {
			Collective struct {
				Members []memberFields `graphql:"members(role: $role, isActive: $isActive, limit: $limit)"`
			} `graphql:"Collective(slug: $collectiveSlug)"`
		}
		vars := map[string]interface{}{
			"collectiveSlug": query.CollectiveSlug,
			"role":           roleFor(query.BackerType),
			"isActive":       query.IsActive,
			"limit":          query.Limit,
		}
		if err := c.gql.Query(ctx, &q, vars); err != nil {
			return nil, mapQueryError(query.CollectiveSlug, err)
		}
		raw = q.Collective.Members
	}

	members := make([]Member, 0, len(raw))
	for _, m := range raw {
		members = append(members, Member{
			Name:  m.Name,
			Slug:  m.Slug,
			Image: m.Image,
			Type:  MemberType(m.Type),
		})
	}
	return members, nil
}

// MembersStats returns the aggregate member count for the selector. The
// stats name is the tier slug when set, the backer type otherwise.
func (c *Client) MembersStats(ctx context.Context, slug, backerType, tierSlug string) (MembersStats, error) {
	members, err := c.Members(ctx, MembersQuery{
		CollectiveSlug: slug,
		BackerType:     backerType,
		TierSlug:       tierSlug,
		IsActive:       true,
	})
	if err != nil {
		return MembersStats{}, err
	}

	name := backerType
	if tierSlug != "" {
		name = tierSlug
	}
	return MembersStats{Name: name, Count: len(members)}, nil
}

// roleFor maps a URL backer-type segment to a graph membership role.
// "all" selects every role.
func roleFor(backerType string) string {
	t := strings.ToUpper(strings.TrimSuffix(backerType, "s"))
	if t == "" || t == "ALL" {
		return "ALL"
	}
	return t
}

// mapQueryError converts graph API errors into service error types.
func mapQueryError(slug string, err error) error {
	if strings.Contains(err.Error(), noCollectiveMessage) {
		return errors.NewNotFoundError("collective", slug)
	}
	return errors.WrapUpstream("graph API", err)
}
