package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/tabdoc"
	"github.com/fwojciec/tabdoc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements tabdoc.Extractor at compile time.
var _ tabdoc.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Documentation</h1>
<p>This is important documentation content that should be extracted.</p>
<pre><code>val auth = FirebaseAuth.getInstance()</code></pre>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, nil)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "important documentation content")
		assert.Contains(t, result.ContentHTML, "FirebaseAuth.getInstance()")
		assert.Equal(t, "trafilatura", result.Selector)
	})

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Get Started - Firebase Docs</title>
<meta property="og:title" content="Get Started">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Get Started</h1>
<p>This is the main content of the documentation page.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, nil)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
<li><a href="/docs">Documentation</a></li>
</ul>
</nav>
<main>
<h1>Main Content</h1>
<p>This paragraph contains the actual content we want.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, nil)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "actual content we want")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("filters sections for unwanted languages", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Add Firebase</title></head>
<body>
<article>
<h1>Add Firebase to your app</h1>
<p>Shared setup instructions that apply to every platform go here first.</p>
<h2>Swift setup</h2>
<p>Open your project in Xcode and add the dependency through Swift Package Manager.</p>
<h2>Kotlin setup</h2>
<p>Add the plugin to your Gradle build file and sync the Android project again.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html, []tabdoc.Language{tabdoc.LanguageKotlin})

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Shared setup instructions")
		assert.Contains(t, result.ContentHTML, "Gradle build file")
		assert.NotContains(t, result.ContentHTML, "Swift Package Manager")
	})

	t.Run("empty input returns EINVALID", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("", nil)

		require.Error(t, err)
		assert.Equal(t, tabdoc.EINVALID, tabdoc.ErrorCode(err))
	})
}
