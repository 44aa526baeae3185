// Package services resolves backend base URLs by service name.
package services

import (
	"fmt"
	"sort"
	"strings"
)

// Name identifies one of the backends the dashboard talks to.
type Name string

const (
	// Casava is the main insurance platform API.
	Casava Name = "casava"
	// Smedan is the SMEDAN partner statistics API.
	Smedan Name = "smedan"

	// Default is used for unset or unknown names.
	Default = Casava
)

var known = map[Name]struct{}{
	Casava: {},
	Smedan: {},
}

// Names returns the closed set of service names in a stable order.
func Names() []Name {
	names := make([]Name, 0, len(known))
	for n := range known {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ParseName validates a service name coming from flags or configuration.
// An empty string selects the default service.
func ParseName(s string) (Name, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, nil
	}
	if _, ok := known[Name(s)]; !ok {
		return "", fmt.Errorf("unknown service %q, expected one of %v", s, Names())
	}
	return Name(s), nil
}

// Resolver maps service names to base URLs. It is immutable after construction
// and safe for concurrent use.
type Resolver struct {
	baseURLs map[Name]string
}

// NewResolver creates a resolver from a name to base URL mapping.
// Trailing slashes are trimmed.
func NewResolver(baseURLs map[Name]string) *Resolver {
	r := &Resolver{baseURLs: make(map[Name]string, len(baseURLs))}
	for name, url := range baseURLs {
		r.baseURLs[name] = strings.TrimRight(strings.TrimSpace(url), "/")
	}
	return r
}

// BaseURL returns the base URL configured for name. Unknown or empty names
// resolve to the default service.
func (r *Resolver) BaseURL(name Name) string {
	if _, ok := known[name]; !ok {
		name = Default
	}
	return r.baseURLs[name]
}
