// Package registry holds the ordered list of named cluster connection profiles.
//
// Names are unique within a Registry. Uniqueness is maintained by Upsert rather
// than by the container, so records keep the order in which they were first added.
package registry

import (
	"fmt"
	"strings"
)

// Cluster is a named remote endpoint plus the username used to log in to it
type Cluster struct {
	// Name identifies the cluster and is matched case-sensitively
	Name string `yaml:"name" json:"name" mapstructure:"name"`

	// URL is the API server address passed to the login tool
	URL string `yaml:"url" json:"url" mapstructure:"url"`

	// Username is passed to the login tool with -u
	Username string `yaml:"username" json:"username" mapstructure:"username"`
}

// Registry is the full ordered collection of cluster records
type Registry []Cluster

// Upsert updates the URL and username of the cluster with the given name in place,
// or appends a new record at the tail if no cluster has that name.
func (r *Registry) Upsert(name, url, username string) {
	if c, ok := r.Find(name); ok {
		c.URL = url
		c.Username = username
		return
	}

	*r = append(*r, Cluster{
		Name:     name,
		URL:      url,
		Username: username,
	})
}

// Find returns a reference to the cluster with the given name.
// The returned pointer aliases the registry's backing array.
func (r Registry) Find(name string) (*Cluster, bool) {
	for i := range r {
		if r[i].Name == name {
			return &r[i], true
		}
	}
	return nil, false
}

// FindByURL returns the first cluster whose URL matches the given server address.
// A trailing slash on either side is ignored.
func (r Registry) FindByURL(url string) (*Cluster, bool) {
	want := strings.TrimSuffix(url, "/")
	if want == "" {
		return nil, false
	}

	for i := range r {
		if strings.TrimSuffix(r[i].URL, "/") == want {
			return &r[i], true
		}
	}
	return nil, false
}

// Names returns the cluster names in registry order
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for _, c := range r {
		names = append(names, c.Name)
	}
	return names
}

// Lines renders one display line per cluster in registry order.
// Wide lines are tab-separated name, username and url; narrow lines carry only the name.
func (r Registry) Lines(wide bool) []string {
	lines := make([]string, 0, len(r))
	for _, c := range r {
		lines = append(lines, c.Line(wide))
	}
	return lines
}

// Line renders a single cluster for listing
func (c Cluster) Line(wide bool) string {
	if wide {
		return fmt.Sprintf("%s\t%s\t%s", c.Name, c.Username, c.URL)
	}
	return c.Name
}

// Clone returns a copy that does not share the backing array
func (r Registry) Clone() Registry {
	if r == nil {
		return nil
	}
	out := make(Registry, len(r))
	copy(out, r)
	return out
}
