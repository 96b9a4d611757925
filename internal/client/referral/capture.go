// Package referral captures the invite code a new user arrived with, so it
// survives until the registration form is submitted.
package referral

import (
	"net/url"
	"sync"
)

// paramNames are the query parameters accepted on invite links, in
// precedence order: the first present wins.
var paramNames = []string{"ref", "referral", "referral_code"}

// Capture resolves the referral code for registration. The source function
// returns the invite link currently in effect (config, flag, or empty); it is
// re-read on every call, so a fresh link always wins over a stale cached
// value. The cache is session-scoped: it lives for the process lifetime and
// is cleared after a successful registration.
type Capture struct {
	source func() string

	mu     sync.Mutex
	cached string
}

// NewCapture constructs a Capture over the given invite-link source. A nil
// source behaves as "no link", which keeps the capture safe in contexts
// where no invite can exist.
func NewCapture(source func() string) *Capture {
	if source == nil {
		source = func() string { return "" }
	}
	return &Capture{source: source}
}

// Code returns the referral code and whether one is known. The invite link
// is consulted first; on a match the code is cached and returned. Otherwise
// the previously cached value, if any, is returned.
func (c *Capture) Code() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if raw := c.source(); raw != "" {
		if code := extractCode(raw); code != "" {
			c.cached = code
			return code, true
		}
	}

	if c.cached != "" {
		return c.cached, true
	}
	return "", false
}

// Clear drops the cached code. Called after a successful registration.
func (c *Capture) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = ""
}

// extractCode pulls the referral code out of an invite link. Unparseable
// links yield no code rather than an error.
func extractCode(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	q := u.Query()
	for _, name := range paramNames {
		if v := q.Get(name); v != "" {
			return v
		}
	}
	return ""
}
