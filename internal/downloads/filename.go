package downloads

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"rawser/internal/domain/consts"
	"rawser/internal/models"
)

// now is swappable for deterministic synthesized filenames in tests.
var now = time.Now

// resolveFilename derives a destination filename from the source URL,
// falling back to video_<unixTimestamp><ext> when the URL path carries
// no usable name.
func resolveFilename(rawURL string, kind models.MediaKind) string {
	if u, err := url.Parse(rawURL); err == nil {
		path := u.Path
		if decoded, err := url.PathUnescape(path); err == nil {
			path = decoded
		}

		name := path
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		name, _, _ = strings.Cut(name, "?")

		if name != "" && strings.Contains(name, ".") {
			if sanitized := sanitizeFilename(name); sanitized != "" {
				return sanitized
			}
		}
	}

	return fmt.Sprintf("video_%d%s", now().Unix(), kind.Ext())
}

// sanitizeFilename replaces characters that are invalid on common
// filesystems, strips control characters, and truncates overlong names
// while preserving the extension.
func sanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case strings.ContainsRune(`<>:"/\|?*`, r):
			b.WriteRune('_')
		case r < 32:
			// Drop control characters.
		default:
			b.WriteRune(r)
		}
	}
	name = strings.TrimSpace(b.String())

	if len(name) > consts.MaxFilenameLen {
		ext := ""
		if i := strings.LastIndex(name, "."); i >= 0 {
			ext = name[i:]
		}
		// An "extension" longer than the cap cannot be preserved.
		if len(ext) >= consts.MaxFilenameLen {
			return name[:consts.MaxFilenameLen]
		}
		name = name[:consts.MaxFilenameLen-len(ext)] + ext
	}
	return name
}

func joinDest(dir, filename string) string {
	return filepath.Join(dir, filename)
}
