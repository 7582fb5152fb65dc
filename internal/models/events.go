package models

// NetworkEvent is one observed browser network request/response, as
// relayed by the embedded-browser collaborator (or synthesized by the
// page scanner).
type NetworkEvent struct {
	URL           string            `json:"url"`
	Method        string            `json:"method,omitempty"`
	FirstPartyURL string            `json:"first_party_url,omitempty"`
	Status        int               `json:"status,omitempty"`
	ContentType   string            `json:"content_type,omitempty"`
	ContentLength int64             `json:"content_length,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
}

// CookieEvent is a cookie-store mutation relayed by the browser.
type CookieEvent struct {
	Action string `json:"action"` // "added" or "removed"
	Domain string `json:"domain"`
	Name   string `json:"name"`
	Value  string `json:"value,omitempty"`
}

// Cookie event actions.
const (
	CookieAdded   = "added"
	CookieRemoved = "removed"
)
