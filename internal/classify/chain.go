// Package classify turns observed network events into typed media
// candidates. The chain is an ordered slice of pure stage functions
// with early exit: the first stage to match wins, and the skip stage
// rejects tracker/static-asset noise before any media matching runs.
package classify

import (
	"strings"
	"time"

	"rawser/internal/domain/consts"
	"rawser/internal/models"
)

// stageFn inspects a lower-cased URL plus event metadata and returns
// the matched media kind, or KindUnknown to pass to the next stage.
type stageFn func(urlLower string, ev models.NetworkEvent) models.MediaKind

// stages run in fixed order: skip → direct video → HLS → DASH → WebM →
// audio. Order is data, so it is trivially testable.
var stages = []stageFn{
	directVideoStage,
	hlsStage,
	dashStage,
	webmStage,
	audioStage,
}

// Classify evaluates one network event. It returns nil for anything
// that is not downloadable media; the caller creates no candidate in
// that case. Classification performs no I/O.
func Classify(ev models.NetworkEvent) *models.MediaCandidate {
	urlLower := strings.ToLower(ev.URL)

	if skipStage(urlLower) {
		return nil
	}

	for _, stage := range stages {
		if kind := stage(urlLower, ev); kind != models.KindUnknown {
			return newCandidate(kind, ev)
		}
	}
	return nil
}

// skipStage matches tracking/analytics domains and static-asset
// extensions. A match stops the whole chain: even a URL that also
// contains a media extension is discarded.
func skipStage(urlLower string) bool {
	for _, pattern := range consts.SkipPatterns {
		if strings.Contains(urlLower, pattern) {
			return true
		}
	}
	return false
}

// adExcluded reports whether a URL matches the ad/tracking exclusion
// list applied inside the video stages.
func adExcluded(urlLower string) bool {
	for _, pattern := range consts.AdPatterns {
		if strings.Contains(urlLower, pattern) {
			return true
		}
	}
	return false
}

func directVideoStage(urlLower string, ev models.NetworkEvent) models.MediaKind {
	for _, ext := range consts.VideoExtensions {
		if strings.Contains(urlLower, ext) && !adExcluded(urlLower) {
			return models.KindDirectVideo
		}
	}

	ct := strings.ToLower(ev.ContentType)
	if strings.Contains(ct, consts.ContentTypeMP4) || strings.Contains(ct, consts.ContentTypeQuicktime) {
		return models.KindDirectVideo
	}
	return models.KindUnknown
}

// hlsStage matches playlist URLs only. Transport-stream segment URLs
// are carried by the manifest and must not become separate candidates.
func hlsStage(urlLower string, _ models.NetworkEvent) models.MediaKind {
	if strings.Contains(urlLower, ".m3u8") {
		return models.KindHLSManifest
	}
	if strings.Contains(urlLower, "manifest") &&
		(strings.Contains(urlLower, "m3u8") || strings.Contains(urlLower, "hls")) {
		return models.KindHLSManifest
	}
	return models.KindUnknown
}

func dashStage(urlLower string, _ models.NetworkEvent) models.MediaKind {
	if strings.Contains(urlLower, ".mpd") {
		return models.KindDASHManifest
	}
	if strings.Contains(urlLower, "dash") && strings.Contains(urlLower, "manifest") {
		return models.KindDASHManifest
	}
	return models.KindUnknown
}

func webmStage(urlLower string, _ models.NetworkEvent) models.MediaKind {
	if strings.Contains(urlLower, ".webm") && !adExcluded(urlLower) {
		return models.KindWebM
	}
	return models.KindUnknown
}

func audioStage(urlLower string, _ models.NetworkEvent) models.MediaKind {
	for _, ext := range consts.AudioExtensions {
		if strings.Contains(urlLower, ext) {
			return models.KindAudio
		}
	}
	return models.KindUnknown
}

// newCandidate builds the candidate for a matched event, capturing the
// browser-identity default headers plus whatever the event exposed.
func newCandidate(kind models.MediaKind, ev models.NetworkEvent) *models.MediaCandidate {
	headers := captureHeaders(ev)

	method := ev.Method
	if method == "" {
		method = "GET"
	}

	return &models.MediaCandidate{
		URL:           ev.URL,
		Kind:          kind,
		Headers:       headers,
		Referrer:      ev.FirstPartyURL,
		FirstPartyURL: ev.FirstPartyURL,
		Method:        method,
		ContentType:   ev.ContentType,
		ContentLength: ev.ContentLength,
		ObservedAt:    time.Now(),
	}
}

// captureHeaders merges the fixed browser identity set with any raw
// request headers the host engine exposed. Captured values win.
func captureHeaders(ev models.NetworkEvent) map[string]string {
	headers := map[string]string{
		consts.HUserAgent:      consts.BrowserUserAgent,
		consts.HAccept:         consts.BrowserAccept,
		consts.HAcceptLanguage: consts.BrowserAcceptLanguage,
		consts.HAcceptEncoding: consts.BrowserAcceptEncoding,
		consts.HConnection:     consts.BrowserConnection,
	}

	if ev.FirstPartyURL != "" {
		headers[consts.HReferer] = ev.FirstPartyURL
	}

	for name, value := range ev.Headers {
		headers[name] = value
	}
	return headers
}
