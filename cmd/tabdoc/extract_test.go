package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/tabdoc"
	main "github.com/fwojciec/tabdoc/cmd/tabdoc"
	"github.com/fwojciec/tabdoc/mock"
	"github.com/fwojciec/tabdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extractDeps builds Dependencies where every pipeline stage succeeds.
func extractDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><main><p>content</p></main></body></html>", nil
			},
		},
		Detector: &mock.LanguageDetector{
			DetectFn: func(html string) []tabdoc.Language {
				return []tabdoc.Language{tabdoc.LanguageKotlin, tabdoc.LanguageSwift}
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string, keep []tabdoc.Language) (*tabdoc.ExtractResult, error) {
				return &tabdoc.ExtractResult{Title: "Get Started", ContentHTML: "<p>content</p>"}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "content", nil
			},
		},
		Writer: &mock.DocumentWriter{
			WriteDocumentFn: func(ctx context.Context, doc *tabdoc.Document) (string, error) {
				return "/out/get-started.md", nil
			},
		},
	}
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts page and reports output path", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := extractDeps(stdout, stderr)

		cmd := &main.ExtractCmd{URL: "https://firebase.google.com/docs/auth"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Languages on page: kotlin, swift")
		assert.Contains(t, output, `Saved "Get Started" to /out/get-started.md`)
		assert.Empty(t, stderr.String())
	})

	t.Run("passes normalized languages to the extractor", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := extractDeps(stdout, stderr)

		var gotKeep []tabdoc.Language
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string, keep []tabdoc.Language) (*tabdoc.ExtractResult, error) {
				gotKeep = keep
				return &tabdoc.ExtractResult{Title: "T", ContentHTML: "<p>x</p>"}, nil
			},
		}

		cmd := &main.ExtractCmd{
			URL:       "https://firebase.google.com/docs/auth",
			Languages: []string{"Android", "ios"},
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []tabdoc.Language{tabdoc.LanguageKotlin, tabdoc.LanguageSwift}, gotKeep)
	})

	t.Run("warns about unknown language names", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := extractDeps(stdout, stderr)

		cmd := &main.ExtractCmd{
			URL:       "https://firebase.google.com/docs/auth",
			Languages: []string{"kotlin", "cobol"},
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), `unknown language "cobol"`)
	})

	t.Run("interactive mode picks from detected languages", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := extractDeps(stdout, stderr)

		var pickedFrom []tabdoc.Language
		deps.Picker = &mock.LanguagePicker{
			PickFn: func(ctx context.Context, available []tabdoc.Language) ([]tabdoc.Language, error) {
				pickedFrom = available
				return []tabdoc.Language{tabdoc.LanguageSwift}, nil
			},
		}

		var gotKeep []tabdoc.Language
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string, keep []tabdoc.Language) (*tabdoc.ExtractResult, error) {
				gotKeep = keep
				return &tabdoc.ExtractResult{Title: "T", ContentHTML: "<p>x</p>"}, nil
			},
		}

		cmd := &main.ExtractCmd{
			URL:         "https://firebase.google.com/docs/auth",
			Interactive: true,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []tabdoc.Language{tabdoc.LanguageKotlin, tabdoc.LanguageSwift}, pickedFrom)
		assert.Equal(t, []tabdoc.Language{tabdoc.LanguageSwift}, gotKeep)
	})

	t.Run("fetch failure is reported and returned", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := extractDeps(stdout, stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", tabdoc.Errorf(tabdoc.EUNAVAILABLE, "Could not reach the page.")
			},
		}

		cmd := &main.ExtractCmd{URL: "https://firebase.google.com/docs/auth"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Could not reach the page.")
	})

	t.Run("records the run in history", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := extractDeps(stdout, stderr)

		var recorded *tabdoc.Document
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter tabdoc.DocumentFilter) ([]*tabdoc.Document, error) {
				return nil, nil
			},
			CreateDocumentFn: func(ctx context.Context, doc *tabdoc.Document) error {
				recorded = doc
				return nil
			},
		}

		cmd := &main.ExtractCmd{URL: "https://firebase.google.com/docs/auth"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, recorded)
		assert.Equal(t, "https://firebase.google.com/docs/auth", recorded.SourceURL)
		assert.Equal(t, "/out/get-started.md", recorded.FilePath)
		assert.NotContains(t, stdout.String(), "unchanged")
	})

	t.Run("reports unchanged content against the previous run", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := extractDeps(stdout, stderr)

		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter tabdoc.DocumentFilter) ([]*tabdoc.Document, error) {
				return []*tabdoc.Document{
					{ID: "prior", ContentHash: sqlite.HashContent("content")},
				}, nil
			},
			CreateDocumentFn: func(ctx context.Context, doc *tabdoc.Document) error {
				return nil
			},
		}

		cmd := &main.ExtractCmd{URL: "https://firebase.google.com/docs/auth"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Content unchanged since last run")
	})
}
