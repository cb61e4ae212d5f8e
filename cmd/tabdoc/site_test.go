package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/tabdoc"
	main "github.com/fwojciec/tabdoc/cmd/tabdoc"
	"github.com/fwojciec/tabdoc/crawl"
	"github.com/fwojciec/tabdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// siteDeps builds Dependencies with a Runner whose stages all succeed.
func siteDeps(stdout, stderr *bytes.Buffer, urls []string) *main.Dependencies {
	runner := &crawl.Runner{
		Sitemaps: &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *tabdoc.URLFilter) ([]string, error) {
				var matched []string
				for _, u := range urls {
					if filter.Match(u) {
						matched = append(matched, u)
					}
				}
				return matched, nil
			},
		},
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><p>page</p></body></html>", nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string, keep []tabdoc.Language) (*tabdoc.ExtractResult, error) {
				return &tabdoc.ExtractResult{Title: "Page", ContentHTML: html}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "page content", nil
			},
		},
		Writer: &mock.DocumentWriter{
			WriteDocumentFn: func(ctx context.Context, doc *tabdoc.Document) (string, error) {
				return "/out/page.md", nil
			},
		},
		Concurrency: 2,
	}

	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Runner: runner,
	}
}

func TestSiteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts all discovered pages and prints a summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := siteDeps(stdout, stderr, []string{
			"https://firebase.google.com/docs/auth",
			"https://firebase.google.com/docs/firestore",
		})

		cmd := &main.SiteCmd{URL: "https://firebase.google.com/docs"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "[2/2]")
		assert.Contains(t, output, "Saved 2 pages")
		assert.Empty(t, stderr.String())
	})

	t.Run("applies URL filters", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := siteDeps(stdout, stderr, []string{
			"https://firebase.google.com/docs/auth",
			"https://firebase.google.com/docs/firestore",
		})

		cmd := &main.SiteCmd{
			URL:    "https://firebase.google.com/docs",
			Filter: []string{"auth"},
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 1 pages")
	})

	t.Run("rejects invalid filter patterns before any network work", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := siteDeps(stdout, stderr, nil)

		cmd := &main.SiteCmd{
			URL:    "https://firebase.google.com/docs",
			Filter: []string{"["},
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid filter pattern")
	})

	t.Run("reports failed pages in the summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := siteDeps(stdout, stderr, []string{
			"https://firebase.google.com/docs/auth",
			"https://firebase.google.com/docs/broken",
		})
		deps.Runner.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://firebase.google.com/docs/broken" {
					return "", tabdoc.Errorf(tabdoc.EUNAVAILABLE, "fetch failed")
				}
				return "<html><body><p>page</p></body></html>", nil
			},
		}

		cmd := &main.SiteCmd{URL: "https://firebase.google.com/docs"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1 failed")
		assert.Contains(t, stderr.String(), "skip https://firebase.google.com/docs/broken")
	})

	t.Run("reports when no pages are found", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := siteDeps(stdout, stderr, nil)

		cmd := &main.SiteCmd{URL: "https://firebase.google.com/docs"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No pages found")
	})
}
