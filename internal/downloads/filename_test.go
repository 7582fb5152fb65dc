package downloads

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"rawser/internal/models"
)

func TestResolveFilenameFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		kind models.MediaKind
		want string
	}{
		{"plain path", "https://site.com/media/clip.mp4", models.KindDirectVideo, "clip.mp4"},
		{"query stripped", "https://site.com/media/clip.mp4?x=1", models.KindDirectVideo, "clip.mp4"},
		{"percent decoded", "https://site.com/media/my%20clip.mp4", models.KindDirectVideo, "my clip.mp4"},
		{"invalid chars replaced", "https://site.com/media/a%3Ab.mp4", models.KindDirectVideo, "a_b.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveFilename(tt.url, tt.kind); got != tt.want {
				t.Errorf("resolveFilename(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestResolveFilenameSynthesized(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	tests := []struct {
		name string
		url  string
		kind models.MediaKind
		want string
	}{
		{"no extension", "https://site.com/stream?id=9", models.KindDirectVideo, "video_1700000000.mp4"},
		{"webm kind", "https://site.com/stream", models.KindWebM, "video_1700000000.webm"},
		{"audio kind", "https://site.com/stream", models.KindAudio, "video_1700000000.mp3"},
		{"hls kind forces mp4", "https://site.com/live", models.KindHLSManifest, "video_1700000000.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveFilename(tt.url, tt.kind); got != tt.want {
				t.Errorf("resolveFilename(%q, %s) = %q, want %q", tt.url, tt.kind, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	if got := sanitizeFilename(`a<b>c:d"e.mp4`); got != "a_b_c_d_e.mp4" {
		t.Errorf("sanitizeFilename = %q, want a_b_c_d_e.mp4", got)
	}

	// Control characters are dropped entirely.
	if got := sanitizeFilename("cl\x01ip.mp4"); got != "clip.mp4" {
		t.Errorf("sanitizeFilename(control chars) = %q, want clip.mp4", got)
	}

	// Overlong names truncate with the extension preserved.
	long := fmt.Sprintf("%s.mp4", strings.Repeat("x", 300))
	got := sanitizeFilename(long)
	if len(got) > 200 {
		t.Errorf("sanitized length = %d, want <= 200", len(got))
	}
	if !strings.HasSuffix(got, ".mp4") {
		t.Errorf("sanitized name %q lost its extension", got)
	}

	// A final dot segment longer than the cap cannot be preserved; the
	// name is hard-truncated instead of panicking.
	overlongExt := "a." + strings.Repeat("x", 250)
	got = sanitizeFilename(overlongExt)
	if len(got) != 200 {
		t.Errorf("sanitized length = %d, want 200 for overlong extension", len(got))
	}
	if got != overlongExt[:200] {
		t.Errorf("sanitized name = %q, want hard truncation of the input", got)
	}
}

func TestForceMP4(t *testing.T) {
	t.Parallel()

	if got := forceMP4("downloads/stream.m3u8"); got != "downloads/stream.mp4" {
		t.Errorf("forceMP4 = %q, want downloads/stream.mp4", got)
	}
	if got := forceMP4("downloads/noext"); got != "downloads/noext.mp4" {
		t.Errorf("forceMP4(no ext) = %q, want downloads/noext.mp4", got)
	}
}
