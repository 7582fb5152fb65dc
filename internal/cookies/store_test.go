package cookies

import "testing"

func TestAddNormalizesDomain(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add(".Example.COM", "session", "abc")

	if got := s.CookiesFor("https://example.com/page"); got != "session=abc" {
		t.Errorf("CookiesFor = %q, want session=abc", got)
	}
}

func TestCookiesForSubdomainMatch(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add("example.com", "a", "1")
	s.Add("other.com", "b", "2")

	if got := s.CookiesFor("https://www.example.com/x"); got != "a=1" {
		t.Errorf("CookiesFor(www.example.com) = %q, want a=1", got)
	}
	if got := s.CookiesFor("https://example.org/"); got != "" {
		t.Errorf("CookiesFor(example.org) = %q, want empty", got)
	}

	// Suffix match must respect label boundaries.
	if got := s.CookiesFor("https://notexample.com/"); got != "" {
		t.Errorf("CookiesFor(notexample.com) = %q, want empty", got)
	}
}

func TestCookiesForSerialization(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add("example.com", "b", "2")
	s.Add("example.com", "a", "1")

	if got := s.CookiesFor("https://example.com/"); got != "a=1; b=2" {
		t.Errorf("CookiesFor = %q, want a=1; b=2 (sorted names)", got)
	}
}

func TestCookiesForDomainCollision(t *testing.T) {
	t.Parallel()

	// Both example.com and www.example.com match the host; sorted
	// merge order makes the longer (later) domain win.
	s := NewStore()
	s.Add("example.com", "session", "parent")
	s.Add("www.example.com", "session", "child")

	if got := s.CookiesFor("https://www.example.com/"); got != "session=child" {
		t.Errorf("CookiesFor = %q, want session=child", got)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add("example.com", "a", "1")
	s.Remove(".example.com", "a")
	s.Remove("example.com", "missing") // no-op

	if got := s.CookiesFor("https://example.com/"); got != "" {
		t.Errorf("CookiesFor after remove = %q, want empty", got)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add("example.com", "a", "1")
	s.Clear()

	if got := s.Len(); got != 0 {
		t.Errorf("Len after clear = %d, want 0", got)
	}
}

func TestCookiesForBadURL(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add("example.com", "a", "1")

	if got := s.CookiesFor("://not-a-url"); got != "" {
		t.Errorf("CookiesFor(bad url) = %q, want empty", got)
	}
}
