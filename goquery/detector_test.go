package goquery_test

import (
	"testing"

	"github.com/fwojciec/tabdoc"
	tabdocquery "github.com/fwojciec/tabdoc/goquery"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("detects languages from headings", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h2>Swift</h2><p>one</p>
<h2>Kotlin</h2><p>two</p>
</body></html>`

		d := tabdocquery.NewDetector()
		langs := d.Detect(html)

		assert.Equal(t, []tabdoc.Language{tabdoc.LanguageKotlin, tabdoc.LanguageSwift}, langs)
	})

	t.Run("detects languages from code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h2>Install</h2>
<pre>pip install firebase-admin</pre>
<code>composer require php/sdk</code>
</body></html>`

		d := tabdocquery.NewDetector()
		langs := d.Detect(html)

		assert.Contains(t, langs, tabdoc.LanguagePython)
		assert.Contains(t, langs, tabdoc.LanguagePHP)
	})

	t.Run("detects languages from class tokens", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<section class="tab-dart hidden">flutter sample omitted</section>
<section class="tab-ruby">sample omitted</section>
</body></html>`

		d := tabdocquery.NewDetector()
		langs := d.Detect(html)

		assert.Contains(t, langs, tabdoc.LanguageDart)
		assert.Contains(t, langs, tabdoc.LanguageRuby)
	})

	t.Run("tooling terms count as indicators", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h2>Open the project in Xcode</h2>
<pre>npm install sdk</pre>
</body></html>`

		d := tabdocquery.NewDetector()
		langs := d.Detect(html)

		assert.Contains(t, langs, tabdoc.LanguageSwift)
		assert.Contains(t, langs, tabdoc.LanguageWeb)
	})

	t.Run("result is sorted, deduplicated and repeatable", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h2>Web</h2>
<h2>Swift</h2>
<h3>More Swift</h3>
<pre>const instance = initialize();</pre>
</body></html>`

		d := tabdocquery.NewDetector()
		first := d.Detect(html)
		second := d.Detect(html)

		assert.Equal(t, first, second)
		assert.Equal(t, []tabdoc.Language{tabdoc.LanguageSwift, tabdoc.LanguageWeb}, first)
	})

	t.Run("returns nothing for pages without language markers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Billing FAQ</h1><p>Pricing details.</p></body></html>`

		d := tabdocquery.NewDetector()
		assert.Empty(t, d.Detect(html))
	})
}
