// Package hls inspects HLS manifests, resolving master playlists to
// their media-playlist variants.
package hls

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"rawser/internal/utils/logging"

	"github.com/grafov/m3u8"
)

// Variant is one stream listed in a master playlist.
type Variant struct {
	URI        string `json:"uri"`
	Bandwidth  uint32 `json:"bandwidth"`
	Resolution string `json:"resolution,omitempty"`
}

var client = &http.Client{Timeout: 30 * time.Second}

// Inspect fetches and decodes a manifest. A media playlist yields no
// variants and no error; a master playlist yields its variant list with
// URIs resolved against the manifest URL.
func Inspect(ctx context.Context, rawURL string, hdrs map[string]string) ([]Variant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building manifest request: %w", err)
	}
	for name, value := range hdrs {
		req.Header.Set(name, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching manifest: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.D(2, "Failed to close manifest body: %v", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("manifest fetch returned %s", resp.Status)
	}

	playlist, listType, err := m3u8.DecodeFrom(resp.Body, true)
	if err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	if listType != m3u8.MASTER {
		return nil, nil
	}

	master, ok := playlist.(*m3u8.MasterPlaylist)
	if !ok {
		return nil, fmt.Errorf("unexpected playlist type for %q", rawURL)
	}

	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest URL: %w", err)
	}

	variants := make([]Variant, 0, len(master.Variants))
	for _, v := range master.Variants {
		if v == nil || v.URI == "" {
			continue
		}
		variants = append(variants, Variant{
			URI:        resolveURI(base, v.URI),
			Bandwidth:  v.Bandwidth,
			Resolution: v.Resolution,
		})
	}
	return variants, nil
}

// ResolveBest returns the highest-bandwidth variant URI for a master
// playlist, or the original URL when the manifest is already a media
// playlist. Suitable as the download engine's HLS resolver.
func ResolveBest(ctx context.Context, rawURL string, hdrs map[string]string) (string, error) {
	variants, err := Inspect(ctx, rawURL, hdrs)
	if err != nil {
		return "", err
	}
	if len(variants) == 0 {
		return rawURL, nil
	}

	best := variants[0]
	for _, v := range variants[1:] {
		if v.Bandwidth > best.Bandwidth {
			best = v
		}
	}

	logging.D(1, "Resolved master playlist %q to variant %q (%d bps)", rawURL, best.URI, best.Bandwidth)
	return best.URI, nil
}

// resolveURI makes a possibly-relative variant URI absolute.
func resolveURI(base *url.URL, uri string) string {
	ref, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return base.ResolveReference(ref).String()
}
