// Package cookies tracks browser cookies per domain and serializes
// them into Cookie headers for downloads.
package cookies

import (
	"net/url"
	"sort"
	"strings"
	"sync"
)

// Store maps normalized domains (lower-case, leading dot stripped) to
// cookie name→value pairs. Fed by browser cookie-store events; read-only
// for the download path.
type Store struct {
	mu      sync.RWMutex
	domains map[string]map[string]string
}

// NewStore returns an empty cookie store.
func NewStore() *Store {
	return &Store{
		domains: make(map[string]map[string]string),
	}
}

// normalizeDomain strips one leading dot and lower-cases the domain,
// so ".Example.com" and "example.com" land in the same bucket.
func normalizeDomain(domain string) string {
	domain = strings.TrimPrefix(domain, ".")
	return strings.ToLower(domain)
}

// Add stores or overwrites a cookie under the normalized domain.
func (s *Store) Add(domain, name, value string) {
	d := normalizeDomain(domain)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.domains[d] == nil {
		s.domains[d] = make(map[string]string)
	}
	s.domains[d][name] = value
}

// Remove deletes a cookie if present; no-op otherwise.
func (s *Store) Remove(domain, name string) {
	d := normalizeDomain(domain)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cookies, ok := s.domains[d]; ok {
		delete(cookies, name)
	}
}

// CookiesFor serializes all cookies matching the URL's host into a
// Cookie header value ("a=1; b=2"). A stored domain matches on exact
// host or as a parent domain (host ends with "."+domain). Matching
// domains merge in sorted order so collisions resolve deterministically,
// last write wins. Returns "" when nothing matches.
func (s *Store) CookiesFor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}

	s.mu.RLock()
	matching := make(map[string]string)
	matched := make([]string, 0, 2)
	for domain := range s.domains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			matched = append(matched, domain)
		}
	}
	sort.Strings(matched)
	for _, domain := range matched {
		for name, value := range s.domains[domain] {
			matching[name] = value
		}
	}
	s.mu.RUnlock()

	if len(matching) == 0 {
		return ""
	}

	names := make([]string, 0, len(matching))
	for name := range matching {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(matching[name])
	}
	return b.String()
}

// Clear empties the store (fresh browsing session).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.domains = make(map[string]map[string]string)
}

// Len returns the number of domains with at least one cookie.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, cookies := range s.domains {
		if len(cookies) > 0 {
			n++
		}
	}
	return n
}
