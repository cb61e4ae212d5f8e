package tabdoc

import "context"

// LanguagePicker selects the languages to keep from the detected set.
// Implementations may prompt the user interactively or answer from
// pre-supplied configuration; the extraction pipeline only requires a
// normalized set of languages and is agnostic to how it was obtained.
type LanguagePicker interface {
	// Pick returns the subset of available languages to keep. An empty
	// result means no filtering.
	Pick(ctx context.Context, available []Language) ([]Language, error)
}
