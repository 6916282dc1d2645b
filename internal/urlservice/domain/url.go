package domain

import "time"

// Link is the record behind one shortcode. Everything except Clicks is
// fixed at creation.
type Link struct {
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Clicks      []Click   `json:"clicks"`
}

// Click is one successful redirect.
type Click struct {
	Timestamp time.Time `json:"timestamp"`
	Referrer  string    `json:"referrer"`
	Geo       string    `json:"geo"`
}

// IsExpired reports whether redirects are no longer allowed at now.
// The expiry instant itself is still valid.
func (l *Link) IsExpired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// TotalClicks returns the number of recorded redirects.
func (l *Link) TotalClicks() int {
	return len(l.Clicks)
}

// Clone returns a copy that shares no mutable state with l.
func (l *Link) Clone() *Link {
	c := *l
	c.Clicks = make([]Click, len(l.Clicks))
	copy(c.Clicks, l.Clicks)
	return &c
}
