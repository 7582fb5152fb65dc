package headers

import (
	"testing"

	"rawser/internal/domain/consts"
	"rawser/internal/models"
)

type stubCookies struct {
	value string
}

func (s stubCookies) CookiesFor(string) string { return s.value }

func TestCapturedHeadersWinOverDefaults(t *testing.T) {
	t.Parallel()

	c := &models.MediaCandidate{
		URL:     "https://cdn.example.com/v.mp4",
		Headers: map[string]string{consts.HUserAgent: "X"},
	}

	h := Synthesize(c, nil)
	if got := h[consts.HUserAgent]; got != "X" {
		t.Errorf("User-Agent = %q, want captured value X", got)
	}
	if got := h[consts.HSecFetchDest]; got != consts.MediaFetchDest {
		t.Errorf("Sec-Fetch-Dest = %q, want %q", got, consts.MediaFetchDest)
	}
}

func TestRefererSynthesizedFromOwnURL(t *testing.T) {
	t.Parallel()

	c := &models.MediaCandidate{URL: "https://cdn.example.com/v.mp4"}

	h := Synthesize(c, nil)
	if got := h[consts.HReferer]; got != "https://cdn.example.com/" {
		t.Errorf("Referer = %q, want https://cdn.example.com/", got)
	}
}

func TestRefererPrefersCandidateReferrer(t *testing.T) {
	t.Parallel()

	c := &models.MediaCandidate{
		URL:      "https://cdn.example.com/v.mp4",
		Referrer: "https://watch.example.com/page",
	}

	h := Synthesize(c, nil)
	if got := h[consts.HReferer]; got != c.Referrer {
		t.Errorf("Referer = %q, want candidate referrer %q", got, c.Referrer)
	}
}

func TestRefererNotOverwrittenWhenCaptured(t *testing.T) {
	t.Parallel()

	c := &models.MediaCandidate{
		URL:      "https://cdn.example.com/v.mp4",
		Referrer: "https://watch.example.com/page",
		Headers:  map[string]string{consts.HReferer: "https://captured.example.com/"},
	}

	h := Synthesize(c, nil)
	if got := h[consts.HReferer]; got != "https://captured.example.com/" {
		t.Errorf("Referer = %q, want captured value preserved", got)
	}
}

func TestOriginFromFirstParty(t *testing.T) {
	t.Parallel()

	c := &models.MediaCandidate{
		URL:           "https://cdn.example.com/v.mp4",
		FirstPartyURL: "https://watch.example.com/page",
	}

	h := Synthesize(c, nil)
	if got := h[consts.HOrigin]; got != "https://watch.example.com" {
		t.Errorf("Origin = %q, want https://watch.example.com", got)
	}
}

func TestOriginFallsBackToOwnURL(t *testing.T) {
	t.Parallel()

	c := &models.MediaCandidate{URL: "https://cdn.example.com/v.mp4"}

	h := Synthesize(c, nil)
	if got := h[consts.HOrigin]; got != "https://cdn.example.com" {
		t.Errorf("Origin = %q, want https://cdn.example.com", got)
	}
}

func TestCookieAttachedOnlyWhenNonEmpty(t *testing.T) {
	t.Parallel()

	c := &models.MediaCandidate{URL: "https://cdn.example.com/v.mp4"}

	h := Synthesize(c, stubCookies{value: "session=abc"})
	if got := h[consts.HCookie]; got != "session=abc" {
		t.Errorf("Cookie = %q, want session=abc", got)
	}

	h = Synthesize(c, stubCookies{value: ""})
	if _, ok := h[consts.HCookie]; ok {
		t.Error("Cookie header set despite empty cookie result")
	}
}
