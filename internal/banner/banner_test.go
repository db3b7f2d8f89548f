package banner

import (
	"strings"
	"testing"

	"github.com/opencollective/images/internal/graph"
	"github.com/opencollective/images/internal/imagecdn"
)

func testMembers() []graph.Member {
	return []graph.Member{
		{Name: "Ada", Slug: "ada", Image: "https://example.com/ada.png", Type: graph.TypePerson},
		{Name: "Initech", Slug: "initech", Image: "https://example.com/initech.png", Type: graph.TypeOrganization},
		{Name: "Ghost", Slug: "ghost", Type: graph.TypePerson}, // no image
	}
}

func TestRenderIncludesAvatarsAndLinks(t *testing.T) {
	out, err := Render(testMembers(), imagecdn.New(""), Options{
		LinkToProfile:  true,
		ProfileBaseURL: "https://opencollective.com",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc := string(out)

	if !strings.HasPrefix(strings.TrimSpace(doc), "<?xml") && !strings.Contains(doc, "<svg") {
		t.Fatalf("Render() did not produce an SVG document: %q", doc[:60])
	}
	if !strings.Contains(doc, "https://opencollective.com/ada") {
		t.Error("expected a profile link for ada")
	}
	if !strings.Contains(doc, "c_thumb,g_face") {
		t.Error("expected person avatars to use the face-crop CDN transform")
	}
	if strings.Contains(doc, "ghost") {
		t.Error("member without an image should not emit an image element")
	}
}

func TestRenderSuppressesLinks(t *testing.T) {
	out, err := Render(testMembers(), imagecdn.New(""), Options{LinkToProfile: false})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(string(out), "<a ") {
		t.Error("links should be suppressed when LinkToProfile is false")
	}
}

func TestRenderButton(t *testing.T) {
	button := "https://images.opencollective.com/static/images/become_sponsor.svg"
	out, err := Render(nil, imagecdn.New(""), Options{ButtonImage: button})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(out), button) {
		t.Error("expected the become-sponsor button image in the banner")
	}
}

func TestRenderHonorsLimit(t *testing.T) {
	members := make([]graph.Member, 10)
	for i := range members {
		members[i] = graph.Member{Slug: "m", Image: "https://example.com/a.png", Type: graph.TypePerson}
	}

	limited, err := Render(members, imagecdn.New(""), Options{Limit: 2})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	full, err := Render(members, imagecdn.New(""), Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Count(string(limited), "<image") >= strings.Count(string(full), "<image") {
		t.Error("limit did not reduce the number of rendered avatars")
	}
}
