// Package scanner crawls a page for media URLs when no live browser
// collaborator is attached, feeding synthetic network events through
// the same classification path real traffic takes.
package scanner

import (
	"fmt"

	"rawser/internal/domain/consts"
	"rawser/internal/models"
	"rawser/internal/utils/logging"

	"github.com/gocolly/colly"
)

// Sink receives synthetic network events; in practice the candidate
// registry's Offer.
type Sink interface {
	Offer(ev models.NetworkEvent) *models.MediaCandidate
}

// Scanner handles page scanning operations.
type Scanner struct {
	sink Sink
}

// New returns a new Scanner feeding the given sink.
func New(sink Sink) *Scanner {
	return &Scanner{sink: sink}
}

// ScanPage fetches one page and offers every embedded media source and
// media-looking link to the sink. The classifier chain does the actual
// filtering, so everything plausible is offered.
func (s *Scanner) ScanPage(pageURL string) (found int, err error) {
	c := colly.NewCollector(
		colly.UserAgent(consts.BrowserUserAgent),
	)

	offer := func(raw string, e *colly.HTMLElement) {
		if raw == "" {
			return
		}
		abs := e.Request.AbsoluteURL(raw)
		if abs == "" {
			return
		}
		ev := models.NetworkEvent{
			URL:           abs,
			Method:        "GET",
			FirstPartyURL: pageURL,
		}
		if s.sink.Offer(ev) != nil {
			found++
		}
	}

	c.OnHTML("video[src]", func(e *colly.HTMLElement) {
		offer(e.Attr("src"), e)
	})
	c.OnHTML("audio[src]", func(e *colly.HTMLElement) {
		offer(e.Attr("src"), e)
	})
	c.OnHTML("source[src]", func(e *colly.HTMLElement) {
		offer(e.Attr("src"), e)
	})
	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		offer(e.Attr("href"), e)
	})

	c.OnError(func(r *colly.Response, visitErr error) {
		err = fmt.Errorf("scan of %q failed: %w", pageURL, visitErr)
	})

	if visitErr := c.Visit(pageURL); visitErr != nil {
		return found, fmt.Errorf("scan of %q failed: %w", pageURL, visitErr)
	}
	c.Wait()

	logging.I("Page scan of %s found %d media candidates", pageURL, found)
	return found, err
}
