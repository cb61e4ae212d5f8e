package tabdoc

import "context"

// ExtractProgress reports progress during a batch extraction.
type ExtractProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ExtractProgressFunc is called as pages are processed.
type ExtractProgressFunc func(ExtractProgress)

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
