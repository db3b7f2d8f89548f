// Package graph queries the Open Collective graph API for the entity data
// the image handlers render: member lists, member statistics, and a single
// collective's image metadata.
package graph

// MemberType classifies a membership record.
type MemberType string

// Member types returned by the graph API.
const (
	TypePerson       MemberType = "USER"
	TypeOrganization MemberType = "ORGANIZATION"
)

// IsOrganization reports whether the member is an organization rather than
// an individual person.
func (t MemberType) IsOrganization() bool {
	return t == TypeOrganization
}

// Member is a single membership record. Read-only to this service.
type Member struct {
	Name  string
	Slug  string
	Image string // empty when the member has no avatar
	Type  MemberType
}

// MembersStats holds the aggregate member count for a selector.
type MembersStats struct {
	Name  string
	Count int
}

// Collective holds the image metadata for one collective.
type Collective struct {
	Slug            string
	Image           string
	BackgroundImage string
}

// MembersQuery selects a member list.
type MembersQuery struct {
	CollectiveSlug string
	BackerType     string
	TierSlug       string
	IsActive       bool
	Limit          int
}
