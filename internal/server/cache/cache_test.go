package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/opencollective/images/internal/graph"
)

func TestMembersKeyDistinguishesParameters(t *testing.T) {
	base := MembersKey{CollectiveSlug: "webpack", BackerType: "backers", IsActive: true}

	variants := []MembersKey{
		{CollectiveSlug: "babel", BackerType: "backers", IsActive: true},
		{CollectiveSlug: "webpack", BackerType: "sponsors", IsActive: true},
		{CollectiveSlug: "webpack", BackerType: "backers", TierSlug: "gold", IsActive: true},
		{CollectiveSlug: "webpack", BackerType: "backers", IsActive: false},
	}
	for _, v := range variants {
		if v.String() == base.String() {
			t.Errorf("key %+v serializes identically to %+v", v, base)
		}
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	c := NewMembers(10, time.Minute)
	key := MembersKey{CollectiveSlug: "webpack", BackerType: "backers", IsActive: true}
	members := []graph.Member{{Name: "Ada", Slug: "ada", Type: graph.TypePerson}}

	if _, ok := c.Get(key); ok {
		t.Fatal("Get() on empty cache returned a value")
	}

	c.Set(key, members)
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get() after Set() returned no value")
	}
	if len(got) != 1 || got[0].Slug != "ada" {
		t.Errorf("Get() = %+v, want the stored member list", got)
	}
}

func TestTTLExpiry(t *testing.T) {
	c := NewMembers(10, 20*time.Millisecond)
	key := MembersKey{CollectiveSlug: "webpack", BackerType: "backers", IsActive: true}
	c.Set(key, []graph.Member{{Slug: "ada"}})

	time.Sleep(50 * time.Millisecond)
	if _, ok := c.Get(key); ok {
		t.Error("Get() returned a value past the TTL")
	}
}

func TestLRUEvictionAtCapacity(t *testing.T) {
	c := NewMembers(3, time.Minute)

	keys := make([]MembersKey, 4)
	for i := range keys {
		keys[i] = MembersKey{CollectiveSlug: fmt.Sprintf("c%d", i), BackerType: "backers", IsActive: true}
	}

	c.Set(keys[0], nil)
	c.Set(keys[1], nil)
	c.Set(keys[2], nil)

	// Touch keys[0] so keys[1] becomes least recently used.
	c.Get(keys[0])

	c.Set(keys[3], nil)

	if _, ok := c.Get(keys[1]); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok := c.Get(keys[0]); !ok {
		t.Error("recently used entry was evicted")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestDefaultsApplied(t *testing.T) {
	c := NewMembers(0, 0)
	key := MembersKey{CollectiveSlug: "webpack", BackerType: "backers", IsActive: true}
	c.Set(key, nil)
	if _, ok := c.Get(key); !ok {
		t.Error("cache with default configuration should store entries")
	}
}
