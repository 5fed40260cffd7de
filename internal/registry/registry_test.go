package registry

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

func TestRegistry_Upsert(t *testing.T) {
	tests := []struct {
		name     string
		initial  Registry
		upsert   Cluster
		expected Registry
	}{
		{
			name:     "empty registry",
			initial:  nil,
			upsert:   Cluster{Name: "dev", URL: "https://api.dev", Username: "alice"},
			expected: Registry{{Name: "dev", URL: "https://api.dev", Username: "alice"}},
		},
		{
			name: "update in place keeps position",
			initial: Registry{
				{Name: "A", URL: "u1", Username: "n1"},
				{Name: "B", URL: "u2", Username: "n2"},
			},
			upsert: Cluster{Name: "A", URL: "u3", Username: "n3"},
			expected: Registry{
				{Name: "A", URL: "u3", Username: "n3"},
				{Name: "B", URL: "u2", Username: "n2"},
			},
		},
		{
			name:    "append on new name",
			initial: Registry{{Name: "A", URL: "u1", Username: "n1"}},
			upsert:  Cluster{Name: "B", URL: "u2", Username: "n2"},
			expected: Registry{
				{Name: "A", URL: "u1", Username: "n1"},
				{Name: "B", URL: "u2", Username: "n2"},
			},
		},
		{
			name:    "names are case sensitive",
			initial: Registry{{Name: "prod", URL: "u1", Username: "n1"}},
			upsert:  Cluster{Name: "Prod", URL: "u2", Username: "n2"},
			expected: Registry{
				{Name: "prod", URL: "u1", Username: "n1"},
				{Name: "Prod", URL: "u2", Username: "n2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := tt.initial.Clone()
			reg.Upsert(tt.upsert.Name, tt.upsert.URL, tt.upsert.Username)

			if !reflect.DeepEqual(reg, tt.expected) {
				t.Errorf("got %+v, want %+v", reg, tt.expected)
			}
		})
	}
}

func TestRegistry_UpsertIdempotent(t *testing.T) {
	var once Registry
	once.Upsert("A", "u1", "n1")
	once.Upsert("B", "u2", "n2")

	twice := once.Clone()
	twice.Upsert("B", "u2", "n2")
	twice.Upsert("B", "u2", "n2")

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("repeated upsert changed registry: %+v vs %+v", once, twice)
	}
}

func TestRegistry_UpsertUniqueness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	names := []string{"a", "b", "c", "d", "e"}

	for round := 0; round < 50; round++ {
		var reg Registry
		for i := 0; i < 30; i++ {
			name := names[rng.Intn(len(names))]
			reg.Upsert(name, fmt.Sprintf("https://%d", i), fmt.Sprintf("user-%d", i))
		}

		seen := make(map[string]bool)
		for _, c := range reg {
			if seen[c.Name] {
				t.Fatalf("round %d: duplicate name %q in %+v", round, c.Name, reg)
			}
			seen[c.Name] = true
		}
	}
}

func TestRegistry_Find(t *testing.T) {
	reg := Registry{
		{Name: "A", URL: "u1", Username: "n1"},
		{Name: "B", URL: "u2", Username: "n2"},
	}

	t.Run("hit", func(t *testing.T) {
		c, ok := reg.Find("B")
		if !ok {
			t.Fatal("expected B to be found")
		}
		if c.URL != "u2" || c.Username != "n2" {
			t.Errorf("unexpected record %+v", c)
		}
	})

	t.Run("miss", func(t *testing.T) {
		c, ok := reg.Find("Z")
		if ok || c != nil {
			t.Errorf("expected not found, got %+v", c)
		}
	})

	t.Run("reference aliases registry", func(t *testing.T) {
		local := reg.Clone()
		c, _ := local.Find("A")
		c.URL = "changed"
		if local[0].URL != "changed" {
			t.Error("expected Find to return a reference into the registry")
		}
	})
}

func TestRegistry_FindByURL(t *testing.T) {
	reg := Registry{
		{Name: "dev", URL: "https://api.dev:6443", Username: "alice"},
		{Name: "prod", URL: "https://api.prod:6443/", Username: "bob"},
	}

	tests := []struct {
		url      string
		wantName string
		wantOK   bool
	}{
		{url: "https://api.dev:6443", wantName: "dev", wantOK: true},
		{url: "https://api.dev:6443/", wantName: "dev", wantOK: true},
		{url: "https://api.prod:6443", wantName: "prod", wantOK: true},
		{url: "https://api.test:6443", wantOK: false},
		{url: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c, ok := reg.FindByURL(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("got ok=%v, want %v", ok, tt.wantOK)
			}
			if ok && c.Name != tt.wantName {
				t.Errorf("got %q, want %q", c.Name, tt.wantName)
			}
		})
	}
}

func TestRegistry_Lines(t *testing.T) {
	reg := Registry{
		{Name: "prod", URL: "https://x", Username: "bob"},
		{Name: "dev", URL: "https://y", Username: "alice"},
	}

	narrow := reg.Lines(false)
	if want := []string{"prod", "dev"}; !reflect.DeepEqual(narrow, want) {
		t.Errorf("narrow: got %q, want %q", narrow, want)
	}

	wide := reg.Lines(true)
	if want := []string{"prod\tbob\thttps://x", "dev\talice\thttps://y"}; !reflect.DeepEqual(wide, want) {
		t.Errorf("wide: got %q, want %q", wide, want)
	}

	if lines := Registry(nil).Lines(true); len(lines) != 0 {
		t.Errorf("expected no lines for empty registry, got %q", lines)
	}
}

func TestRegistry_Names(t *testing.T) {
	reg := Registry{{Name: "b"}, {Name: "a"}}
	if got := reg.Names(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("got %q", got)
	}
}
