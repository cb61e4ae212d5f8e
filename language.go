package tabdoc

import (
	"sort"
	"strings"
)

// Language identifies one of the programming-language/platform tabs used by
// templated documentation sites. The set of languages is closed.
type Language string

// Supported languages.
const (
	LanguageDart   Language = "dart"
	LanguageGo     Language = "go"
	LanguageJava   Language = "java"
	LanguageKotlin Language = "kotlin"
	LanguageNode   Language = "node"
	LanguagePHP    Language = "php"
	LanguagePython Language = "python"
	LanguageRuby   Language = "ruby"
	LanguageSwift  Language = "swift"
	LanguageUnity  Language = "unity"
	LanguageWeb    Language = "web"
)

// languageVariants maps each language to the lowercase spellings that appear
// in section headings and user input. Process-wide read-only configuration;
// never mutated after initialization.
var languageVariants = map[Language][]string{
	LanguageSwift:  {"swift", "ios"},
	LanguageKotlin: {"kotlin", "android"},
	LanguageJava:   {"java"},
	LanguageWeb:    {"web", "javascript", "js"},
	LanguageDart:   {"dart", "flutter"},
	LanguageUnity:  {"unity", "c#", "csharp"},
	LanguagePython: {"python"},
	LanguageGo:     {"go"},
	LanguagePHP:    {"php"},
	LanguageRuby:   {"ruby"},
	LanguageNode:   {"node", "nodejs", "node.js"},
}

// languageIndicators extends the variant spellings with tooling terms that
// signal a language's presence in page content (code blocks, class tokens)
// without ever appearing in user input.
var languageIndicators = map[Language][]string{
	LanguageSwift:  {"swift", "ios", "xcode"},
	LanguageKotlin: {"kotlin", "android studio"},
	LanguageJava:   {"java"},
	LanguageWeb:    {"web", "javascript", "npm", "node.js"},
	LanguageDart:   {"dart", "flutter"},
	LanguageUnity:  {"unity", "c#"},
	LanguagePython: {"python", "pip"},
	LanguageGo:     {"go", "golang"},
	LanguagePHP:    {"php"},
	LanguageRuby:   {"ruby"},
	LanguageNode:   {"node.js", "nodejs"},
}

// Languages returns every supported language in alphabetical order.
func Languages() []Language {
	langs := make([]Language, 0, len(languageVariants))
	for l := range languageVariants {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// Variants returns the lowercase spellings associated with the language.
// Returns nil for a language outside the supported set.
func (l Language) Variants() []string {
	return languageVariants[l]
}

// Indicators returns the detection terms associated with the language.
// Returns nil for a language outside the supported set.
func (l Language) Indicators() []string {
	return languageIndicators[l]
}

// Valid reports whether the language is part of the supported set.
func (l Language) Valid() bool {
	_, ok := languageVariants[l]
	return ok
}

// Display returns the language name with an upper-cased first letter,
// suitable for user-facing output.
func (l Language) Display() string {
	s := string(l)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NormalizeLanguage resolves a user-supplied name to its canonical language.
// Matching is case-insensitive and accepts any variant spelling ("android"
// resolves to kotlin, "js" to web). The second result is false if the name
// matches no supported language.
func NormalizeLanguage(name string) (Language, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	for lang, variants := range languageVariants {
		for _, v := range variants {
			if needle == v {
				return lang, true
			}
		}
	}
	return "", false
}

// ParseLanguages normalizes a list of user-supplied names. Unknown names are
// not an error; they are returned separately so callers can warn about them.
// Duplicates collapse and the result is alphabetically sorted.
func ParseLanguages(names []string) (langs []Language, unknown []string) {
	seen := make(map[Language]bool)
	for _, name := range names {
		lang, ok := NormalizeLanguage(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs, unknown
}
