// Package headers reconstructs browser-equivalent request headers for
// media downloads.
package headers

import (
	"net/url"

	"rawser/internal/domain/consts"
	"rawser/internal/models"
)

// CookieSource answers "cookies for URL" queries, serialized as a
// Cookie header value. Empty string means no match.
type CookieSource interface {
	CookiesFor(url string) string
}

// defaults is the fixed browser header set used as the base layer.
// Captured candidate headers always overwrite these.
func defaults() map[string]string {
	return map[string]string{
		consts.HUserAgent:      consts.BrowserUserAgent,
		consts.HAccept:         consts.BrowserAccept,
		consts.HAcceptLanguage: consts.BrowserAcceptLanguage,
		consts.HAcceptEncoding: consts.BrowserAcceptEncoding,
		consts.HConnection:     consts.BrowserConnection,
		consts.HSecFetchDest:   consts.MediaFetchDest,
		consts.HSecFetchMode:   consts.MediaFetchMode,
		consts.HSecFetchSite:   consts.MediaFetchSite,
	}
}

// Synthesize produces the exact header map handed to the transport
// layer. Many video servers reject requests without a plausible
// Referer/Origin, so both are guaranteed present.
func Synthesize(c *models.MediaCandidate, cookies CookieSource) map[string]string {
	h := defaults()

	for name, value := range c.Headers {
		h[name] = value
	}

	if _, ok := h[consts.HReferer]; !ok {
		if c.Referrer != "" {
			h[consts.HReferer] = c.Referrer
		} else if scheme, host, ok := schemeHost(c.URL); ok {
			h[consts.HReferer] = scheme + "://" + host + "/"
		}
	}

	if _, ok := h[consts.HOrigin]; !ok {
		if scheme, host, ok := schemeHost(c.FirstPartyURL); ok {
			h[consts.HOrigin] = scheme + "://" + host
		} else if scheme, host, ok := schemeHost(c.URL); ok {
			h[consts.HOrigin] = scheme + "://" + host
		}
	}

	if cookies != nil {
		if cookieHeader := cookies.CookiesFor(c.URL); cookieHeader != "" {
			h[consts.HCookie] = cookieHeader
		}
	}

	return h
}

// schemeHost splits a URL into scheme and host, reporting false for
// unparsable or empty input.
func schemeHost(rawURL string) (scheme, host string, ok bool) {
	if rawURL == "" {
		return "", "", false
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", "", false
	}
	return u.Scheme, u.Host, true
}
