package registry

import (
	"testing"

	"rawser/internal/models"
)

func TestOfferDeduplicates(t *testing.T) {
	t.Parallel()

	r := New()
	ev := models.NetworkEvent{URL: "https://cdn.example.com/v.mp4"}

	first := r.Offer(ev)
	if first == nil {
		t.Fatal("first offer should yield a candidate")
	}

	second := r.Offer(ev)
	if second != nil {
		t.Error("second offer of the same URL should yield nothing")
	}

	if got := len(r.All()); got != 1 {
		t.Errorf("All() length = %d, want 1", got)
	}
}

func TestOfferRejectsNoise(t *testing.T) {
	t.Parallel()

	r := New()
	if c := r.Offer(models.NetworkEvent{URL: "https://example.com/app.js"}); c != nil {
		t.Errorf("noise offer yielded candidate %s", c.URL)
	}
	if got := len(r.All()); got != 0 {
		t.Errorf("All() length = %d, want 0", got)
	}
}

func TestOnCandidateFiresOncePerURL(t *testing.T) {
	t.Parallel()

	r := New()

	var calls int
	r.OnCandidate(func(*models.MediaCandidate) { calls++ })

	ev := models.NetworkEvent{URL: "https://cdn.example.com/v.mp4"}
	r.Offer(ev)
	r.Offer(ev)
	r.Offer(models.NetworkEvent{URL: "https://example.com/noise.css"})

	if calls != 1 {
		t.Errorf("callback fired %d times, want 1", calls)
	}
}

func TestAllPreservesDiscoveryOrder(t *testing.T) {
	t.Parallel()

	r := New()
	urls := []string{
		"https://cdn.example.com/a.mp4",
		"https://cdn.example.com/b.m3u8",
		"https://cdn.example.com/c.webm",
	}
	for _, u := range urls {
		r.Offer(models.NetworkEvent{URL: u})
	}

	all := r.All()
	if len(all) != len(urls) {
		t.Fatalf("All() length = %d, want %d", len(all), len(urls))
	}
	for i, c := range all {
		if c.URL != urls[i] {
			t.Errorf("All()[%d] = %q, want %q", i, c.URL, urls[i])
		}
	}
}

func TestByKind(t *testing.T) {
	t.Parallel()

	r := New()
	r.Offer(models.NetworkEvent{URL: "https://cdn.example.com/a.mp4"})
	r.Offer(models.NetworkEvent{URL: "https://cdn.example.com/b.m3u8"})
	r.Offer(models.NetworkEvent{URL: "https://cdn.example.com/c.mp4"})

	vids := r.ByKind(models.KindDirectVideo)
	if len(vids) != 2 {
		t.Errorf("ByKind(direct video) length = %d, want 2", len(vids))
	}
	if hls := r.ByKind(models.KindHLSManifest); len(hls) != 1 {
		t.Errorf("ByKind(hls) length = %d, want 1", len(hls))
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	r := New()
	url := "https://cdn.example.com/a.mp4"
	r.Offer(models.NetworkEvent{URL: url})

	if c, ok := r.Lookup(url); !ok || c.URL != url {
		t.Errorf("Lookup(%q) = %v, %v", url, c, ok)
	}
	if _, ok := r.Lookup("https://cdn.example.com/missing.mp4"); ok {
		t.Error("Lookup of unknown URL reported found")
	}
}

func TestClearResetsDedup(t *testing.T) {
	t.Parallel()

	r := New()
	ev := models.NetworkEvent{URL: "https://cdn.example.com/a.mp4"}
	r.Offer(ev)
	r.Clear()

	if got := len(r.All()); got != 0 {
		t.Errorf("All() after clear = %d, want 0", got)
	}
	if c := r.Offer(ev); c == nil {
		t.Error("offer after clear should yield a fresh candidate")
	}
}
