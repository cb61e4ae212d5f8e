// Package crawl orchestrates batch extraction across a documentation site.
// It coordinates sitemap discovery, per-domain rate limiting, fetching,
// extraction, and output of documentation pages.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/tabdoc"
	"github.com/fwojciec/tabdoc/bloom"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for URL deduplication. A false positive skips a page;
// it never extracts one twice.
const (
	dedupExpectedURLs      = 10000
	dedupFalsePositiveRate = 0.01
)

// Runner extracts every page discovered under a site's sitemap.
type Runner struct {
	Sitemaps    tabdoc.SitemapService
	Fetcher     tabdoc.Fetcher
	Extractor   tabdoc.Extractor
	Converter   tabdoc.Converter
	Writer      tabdoc.DocumentWriter
	Documents   tabdoc.DocumentService // optional; records runs when set
	RateLimiter tabdoc.DomainLimiter   // optional; no throttling when nil
	Concurrency int
}

// Result holds the outcome of a batch run.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	url      string
	markdown string
	err      error
}

// Run discovers URLs under baseURL and extracts each page, keeping only
// sections for the languages in keep (an empty keep set disables filtering).
// The progress callback, if provided, receives an event per page.
func (r *Runner) Run(ctx context.Context, baseURL string, keep []tabdoc.Language, filter *tabdoc.URLFilter, progress tabdoc.ExtractProgressFunc) (*Result, error) {
	urls, err := r.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	// Sitemap indexes can list the same page more than once.
	seen := bloom.NewFilter(dedupExpectedURLs, dedupFalsePositiveRate)
	deduped := urls[:0]
	for _, u := range urls {
		if seen.Test(u) {
			continue
		}
		seen.Add(u)
		deduped = append(deduped, u)
	}
	urls = deduped

	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	resultCh := make(chan pageResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, pageURL := range urls {
			pageURL := pageURL
			g.Go(func() error {
				resultCh <- r.processURL(gctx, pageURL, keep)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result Result
	for pr := range resultCh {
		completed.Add(1)

		if pr.err != nil {
			result.Failed++
		} else {
			result.Saved++
			result.Bytes += len(pr.markdown)
		}

		if progress != nil {
			progress(tabdoc.ExtractProgress{
				URL:       pr.url,
				Completed: int(completed.Load()),
				Total:     total,
				Error:     pr.err,
			})
		}
	}

	return &result, nil
}

// processURL runs the full pipeline for one page: rate limit, fetch,
// extract, convert, write, record.
func (r *Runner) processURL(ctx context.Context, pageURL string, keep []tabdoc.Language) pageResult {
	result := pageResult{url: pageURL}

	if r.RateLimiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			result.err = tabdoc.Errorf(tabdoc.EINVALID, "invalid URL: %s", pageURL)
			return result
		}
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	html, err := r.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := r.Extractor.Extract(html, keep)
	if err != nil {
		result.err = err
		return result
	}

	markdown, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	doc := &tabdoc.Document{
		SourceURL: pageURL,
		Title:     extracted.Title,
		Content:   markdown,
		Languages: keep,
		FetchedAt: time.Now(),
	}

	path, err := r.Writer.WriteDocument(ctx, doc)
	if err != nil {
		result.err = err
		return result
	}

	if r.Documents != nil {
		doc.FilePath = path
		if err := r.Documents.CreateDocument(ctx, doc); err != nil {
			result.err = err
			return result
		}
	}

	result.markdown = markdown

	return result
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
