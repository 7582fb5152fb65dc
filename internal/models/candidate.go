// Package models holds the data types passed between Rawser components.
package models

import "time"

// MediaKind identifies what sort of downloadable media a URL points at.
type MediaKind string

const (
	KindDirectVideo  MediaKind = "mp4"
	KindHLSManifest  MediaKind = "m3u8"
	KindDASHManifest MediaKind = "mpd"
	KindWebM         MediaKind = "webm"
	KindAudio        MediaKind = "audio"
	KindUnknown      MediaKind = "unknown"
)

// KindExtensions maps each media kind to the extension used when a
// filename has to be synthesized. Manifests remux into mp4 containers.
var KindExtensions = map[MediaKind]string{
	KindDirectVideo:  ".mp4",
	KindWebM:         ".webm",
	KindHLSManifest:  ".mp4",
	KindDASHManifest: ".mp4",
	KindAudio:        ".mp3",
	KindUnknown:      ".mp4",
}

// Ext returns the synthesized-filename extension for the kind.
func (k MediaKind) Ext() string {
	if ext, ok := KindExtensions[k]; ok {
		return ext
	}
	return ".mp4"
}

// ParseMediaKind maps a wire string onto a MediaKind, defaulting to
// KindUnknown for anything unrecognized.
func ParseMediaKind(s string) MediaKind {
	switch MediaKind(s) {
	case KindDirectVideo, KindHLSManifest, KindDASHManifest, KindWebM, KindAudio:
		return MediaKind(s)
	default:
		return KindUnknown
	}
}

// MediaCandidate is one observed network resource believed to be
// downloadable media, with the request context captured alongside it.
type MediaCandidate struct {
	URL           string            `json:"url"`
	Kind          MediaKind         `json:"kind"`
	Headers       map[string]string `json:"headers,omitempty"`
	Referrer      string            `json:"referrer,omitempty"`
	FirstPartyURL string            `json:"first_party_url,omitempty"`
	Method        string            `json:"method,omitempty"`
	ContentType   string            `json:"content_type,omitempty"`
	ContentLength int64             `json:"content_length,omitempty"`
	ObservedAt    time.Time         `json:"observed_at"`
}
