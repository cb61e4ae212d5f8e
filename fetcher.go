package tabdoc

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the response body.
	// The context controls timeout and cancellation. A non-2xx status is
	// reported as an error, not a fatal abort; the caller decides whether
	// to continue with other URLs.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}
