package cookies

import (
	"context"
	"fmt"
	"net/url"

	"rawser/internal/utils/logging"

	"github.com/browserutils/kooky"
	// Register all kooky browser backends:
	_ "github.com/browserutils/kooky/browser/all"
	"golang.org/x/net/publicsuffix"
)

// baseDomain returns the effective TLD+1 for an inputted URL.
func baseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return publicsuffix.EffectiveTLDPlusOne(u.Hostname())
}

// SeedForURL loads cookies for the URL's base domain from browsers
// installed on this machine and merges them into the store. Useful when
// no live browser collaborator is attached (CLI scan/download paths).
func (s *Store) SeedForURL(ctx context.Context, rawURL string) (int, error) {
	base, err := baseDomain(rawURL)
	if err != nil {
		return 0, fmt.Errorf("error extracting base domain for cookie seed: %w", err)
	}

	kookyCookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.Domain(base))
	if err != nil {
		logging.D(2, "Failed reading browser cookies for %q: %v", base, err)
		return 0, nil
	}

	for _, c := range kookyCookies {
		domain := c.Domain
		if domain == "" {
			domain = base
		}
		s.Add(domain, c.Name, c.Value)
	}

	if n := len(kookyCookies); n > 0 {
		logging.I("Seeded %d browser cookies for %s", n, base)
		return n, nil
	}

	logging.D(1, "No browser cookies found for %s", base)
	return 0, nil
}
