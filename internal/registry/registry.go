// Package registry deduplicates and orders discovered media candidates.
package registry

import (
	"sync"

	"rawser/internal/classify"
	"rawser/internal/models"
	"rawser/internal/utils/logging"
)

// Registry holds every candidate seen this session, in discovery order,
// deduplicated by exact URL. Offer may be called from concurrent event
// handlers, so the read-modify-write is mutex guarded to preserve the
// one-candidate-per-URL invariant.
type Registry struct {
	mu         sync.Mutex
	candidates []*models.MediaCandidate
	seen       map[string]struct{}
	onFound    func(*models.MediaCandidate)
}

// New returns an empty candidate registry.
func New() *Registry {
	return &Registry{
		seen: make(map[string]struct{}),
	}
}

// OnCandidate registers the notification invoked once per new candidate.
func (r *Registry) OnCandidate(fn func(*models.MediaCandidate)) {
	r.mu.Lock()
	r.onFound = fn
	r.mu.Unlock()
}

// Offer runs the classifier chain over an event. Already-known URLs and
// non-media events yield nil with no side effects; a fresh typed match
// is stored, appended, and announced via the OnCandidate callback.
func (r *Registry) Offer(ev models.NetworkEvent) *models.MediaCandidate {
	r.mu.Lock()
	if _, dup := r.seen[ev.URL]; dup {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	candidate := classify.Classify(ev)
	if candidate == nil {
		return nil
	}

	r.mu.Lock()
	// Re-check under lock: a concurrent Offer for the same URL may have
	// won the race between the dup check and classification.
	if _, dup := r.seen[ev.URL]; dup {
		r.mu.Unlock()
		return nil
	}
	r.seen[ev.URL] = struct{}{}
	r.candidates = append(r.candidates, candidate)
	onFound := r.onFound
	r.mu.Unlock()

	logging.D(1, "New %s candidate: %s", candidate.Kind, candidate.URL)

	if onFound != nil {
		onFound(candidate)
	}
	return candidate
}

// All returns a snapshot of every candidate in discovery order.
func (r *Registry) All() []*models.MediaCandidate {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.MediaCandidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

// ByKind returns a snapshot filtered to one media kind.
func (r *Registry) ByKind(kind models.MediaKind) []*models.MediaCandidate {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.MediaCandidate
	for _, c := range r.candidates {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Lookup returns the candidate for an exact URL, if known.
func (r *Registry) Lookup(url string) (*models.MediaCandidate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[url]; !ok {
		return nil, false
	}
	for _, c := range r.candidates {
		if c.URL == url {
			return c, true
		}
	}
	return nil, false
}

// Clear empties both the ordered list and the dedup set, used when
// navigating to a fresh page or session.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.candidates = nil
	r.seen = make(map[string]struct{})
}
