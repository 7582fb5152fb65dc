package classify

import (
	"testing"

	"rawser/internal/domain/consts"
	"rawser/internal/models"
)

// TestClassifyKinds checks that each stage matches its own URLs and
// that the chain order is deterministic.
func TestClassifyKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   models.NetworkEvent
		want models.MediaKind
	}{
		{"mp4 extension", models.NetworkEvent{URL: "https://cdn.example.com/video/clip.mp4"}, models.KindDirectVideo},
		{"mov extension", models.NetworkEvent{URL: "https://cdn.example.com/video/clip.mov"}, models.KindDirectVideo},
		{"m4v extension", models.NetworkEvent{URL: "https://cdn.example.com/video/clip.m4v"}, models.KindDirectVideo},
		{"mp4 content type", models.NetworkEvent{URL: "https://cdn.example.com/stream", ContentType: "video/mp4"}, models.KindDirectVideo},
		{"quicktime content type", models.NetworkEvent{URL: "https://cdn.example.com/stream", ContentType: "video/quicktime"}, models.KindDirectVideo},
		{"m3u8 playlist", models.NetworkEvent{URL: "https://cdn.example.com/live/playlist.m3u8"}, models.KindHLSManifest},
		{"hls manifest keyword", models.NetworkEvent{URL: "https://cdn.example.com/manifest/hls/stream"}, models.KindHLSManifest},
		{"dash mpd", models.NetworkEvent{URL: "https://cdn.example.com/stream.mpd"}, models.KindDASHManifest},
		{"dash manifest keyword", models.NetworkEvent{URL: "https://cdn.example.com/dash/stream/manifest"}, models.KindDASHManifest},
		{"webm extension", models.NetworkEvent{URL: "https://cdn.example.com/clip.webm"}, models.KindWebM},
		{"mp3 audio", models.NetworkEvent{URL: "https://cdn.example.com/track.mp3"}, models.KindAudio},
		{"flac audio", models.NetworkEvent{URL: "https://cdn.example.com/track.flac"}, models.KindAudio},
		{"uppercase URL", models.NetworkEvent{URL: "https://CDN.EXAMPLE.COM/CLIP.MP4"}, models.KindDirectVideo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := Classify(tt.ev)
			if c == nil {
				t.Fatalf("Classify(%q) = nil, want kind %s", tt.ev.URL, tt.want)
			}
			if c.Kind != tt.want {
				t.Errorf("Classify(%q) kind = %s, want %s", tt.ev.URL, c.Kind, tt.want)
			}
		})
	}
}

// TestClassifyRejects checks that noise yields no candidate.
func TestClassifyRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   models.NetworkEvent
	}{
		{"script asset", models.NetworkEvent{URL: "https://example.com/app.js"}},
		{"stylesheet", models.NetworkEvent{URL: "https://example.com/site.css"}},
		{"image", models.NetworkEvent{URL: "https://example.com/photo.jpg"}},
		{"analytics domain", models.NetworkEvent{URL: "https://www.google-analytics.com/collect"}},
		{"ad server mp4", models.NetworkEvent{URL: "https://googleads.example.com/ad/clip.mp4"}},
		{"plain page", models.NetworkEvent{URL: "https://example.com/watch?v=123"}},
		{"ts segment", models.NetworkEvent{URL: "https://cdn.example.com/seg/chunk-001.ts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if c := Classify(tt.ev); c != nil {
				t.Errorf("Classify(%q) = %s candidate, want none", tt.ev.URL, c.Kind)
			}
		})
	}
}

// TestSkipDominatesMediaMatch verifies the skip stage stops the chain
// even when the URL also carries a media extension.
func TestSkipDominatesMediaMatch(t *testing.T) {
	t.Parallel()

	ev := models.NetworkEvent{URL: "https://tracking.example.com/pixel/clip.mp4"}
	if c := Classify(ev); c != nil {
		t.Errorf("Classify(%q) = %s candidate, want none (skip pattern present)", ev.URL, c.Kind)
	}
}

// TestStageOrderFirstMatchWins checks that a URL matching several
// stages is classified by the earliest one.
func TestStageOrderFirstMatchWins(t *testing.T) {
	t.Parallel()

	// Matches both the direct video stage (.mp4) and the audio stage (.aac).
	ev := models.NetworkEvent{URL: "https://cdn.example.com/media/clip.aac.mp4"}
	c := Classify(ev)
	if c == nil {
		t.Fatal("expected a candidate")
	}
	if c.Kind != models.KindDirectVideo {
		t.Errorf("kind = %s, want %s (direct video stage runs before audio)", c.Kind, models.KindDirectVideo)
	}
}

// TestCandidateCapture checks the captured request context on a match.
func TestCandidateCapture(t *testing.T) {
	t.Parallel()

	ev := models.NetworkEvent{
		URL:           "https://cdn.example.com/v.mp4",
		FirstPartyURL: "https://watch.example.com/page",
		ContentType:   "video/mp4",
		ContentLength: 1234,
		Headers:       map[string]string{"X-Session": "abc"},
	}

	c := Classify(ev)
	if c == nil {
		t.Fatal("expected a candidate")
	}

	if c.Referrer != ev.FirstPartyURL {
		t.Errorf("referrer = %q, want %q", c.Referrer, ev.FirstPartyURL)
	}
	if c.Method != "GET" {
		t.Errorf("method = %q, want GET default", c.Method)
	}
	if c.ContentLength != 1234 {
		t.Errorf("content length = %d, want 1234", c.ContentLength)
	}
	if got := c.Headers[consts.HUserAgent]; got != consts.BrowserUserAgent {
		t.Errorf("User-Agent = %q, want browser default", got)
	}
	if got := c.Headers[consts.HReferer]; got != ev.FirstPartyURL {
		t.Errorf("Referer = %q, want first-party URL", got)
	}
	if got := c.Headers["X-Session"]; got != "abc" {
		t.Errorf("captured header X-Session = %q, want abc", got)
	}
	if c.ObservedAt.IsZero() {
		t.Error("observedAt not set")
	}
}
