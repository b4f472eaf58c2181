package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schalder/ecombuildr-edge/internal/edge/seo"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Options{
		FallbackTitle:       "Acme",
		FallbackDescription: "Loading the store",
		AssetBase:           "https://cdn.example.com/app",
	})
	require.NoError(t, err)
	return r
}

func fullRecord() *seo.Record {
	return &seo.Record{
		Title:       "Blue Shoes",
		Description: "Classic blue canvas shoes.",
		Image:       "https://cdn.example.com/blue.png",
		Keywords:    []string{"shoes", "blue"},
		Canonical:   "https://shop.example.com/products/blue-shoes",
		Robots:      "index, follow",
		SiteName:    "Acme Store",
	}
}

func TestCrawlerHTML_FullRecord(t *testing.T) {
	r := newTestRenderer(t)

	html, err := r.CrawlerHTML(fullRecord())
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Blue Shoes</title>")
	assert.Contains(t, html, `<meta name="description" content="Classic blue canvas shoes.">`)
	assert.Contains(t, html, `<meta name="keywords" content="shoes, blue">`)
	assert.Contains(t, html, `<meta name="robots" content="index, follow">`)
	assert.Contains(t, html, `<meta property="og:title" content="Blue Shoes">`)
	assert.Contains(t, html, `<meta property="og:image" content="https://cdn.example.com/blue.png">`)
	assert.Contains(t, html, `<meta property="og:image:secure_url" content="https://cdn.example.com/blue.png">`)
	assert.Contains(t, html, `<meta property="og:site_name" content="Acme Store">`)
	assert.Contains(t, html, `<meta property="og:locale" content="en_US">`)
	assert.Contains(t, html, `<meta name="twitter:card" content="summary_large_image">`)
	assert.Contains(t, html, `<meta name="twitter:image" content="https://cdn.example.com/blue.png">`)
	assert.Contains(t, html, `<link rel="canonical" href="https://shop.example.com/products/blue-shoes">`)
	assert.Contains(t, html, "<h1>Blue Shoes</h1>")
}

func TestCrawlerHTML_ConditionalTags(t *testing.T) {
	r := newTestRenderer(t)
	rec := fullRecord()
	rec.Image = ""
	rec.Keywords = nil

	html, err := r.CrawlerHTML(rec)
	require.NoError(t, err)

	assert.NotContains(t, html, "og:image")
	assert.NotContains(t, html, "twitter:image")
	assert.NotContains(t, html, `name="keywords"`)
}

func TestCrawlerHTML_EscapesTenantContent(t *testing.T) {
	r := newTestRenderer(t)
	rec := fullRecord()
	rec.Title = `<script>alert('x')</script>`
	rec.Description = `"quoted" & <b>bold</b>`

	html, err := r.CrawlerHTML(rec)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
	assert.NotContains(t, html, "<b>bold</b>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestCrawlerHTML_JSONLD(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("structured data present", func(t *testing.T) {
		html, err := r.CrawlerHTML(fullRecord())
		require.NoError(t, err)

		assert.Contains(t, html, `<script type="application/ld+json">`)
		assert.Contains(t, html, `"@context":"https://schema.org"`)
		assert.Contains(t, html, `"@type":"WebPage"`)
		assert.Contains(t, html, `"name":"Blue Shoes"`)
		assert.Contains(t, html, `"image":"https://cdn.example.com/blue.png"`)
	})

	t.Run("angle brackets never survive into the script", func(t *testing.T) {
		rec := fullRecord()
		rec.Title = `</script><script>alert(1)</script>`

		html, err := r.CrawlerHTML(rec)
		require.NoError(t, err)

		// The only script close tags are the template's own.
		assert.Equal(t, 2, strings.Count(html, "</script>"))
	})

	t.Run("no image omits the logo and image entries", func(t *testing.T) {
		rec := fullRecord()
		rec.Image = ""

		html, err := r.CrawlerHTML(rec)
		require.NoError(t, err)

		assert.NotContains(t, html, `"logo"`)
		assert.NotContains(t, html, `"image"`)
	})
}

func TestCrawlerHTML_LocaleOption(t *testing.T) {
	r, err := New(Options{Locale: "de_DE"})
	require.NoError(t, err)

	html, err := r.CrawlerHTML(fullRecord())
	require.NoError(t, err)

	assert.Contains(t, html, `<meta property="og:locale" content="de_DE">`)
}

func TestSPAShell(t *testing.T) {
	r := newTestRenderer(t)

	shell := r.SPAShell()
	assert.Contains(t, shell, "<title>Acme</title>")
	assert.Contains(t, shell, `<meta name="description" content="Loading the store">`)
	assert.Contains(t, shell, `<div id="root"></div>`)
	assert.Contains(t, shell, `src="https://cdn.example.com/app/assets/index.js"`)

	// Pre-rendered once; every call returns the identical document.
	assert.Equal(t, shell, r.SPAShell())
}

func TestSPAShell_Defaults(t *testing.T) {
	r, err := New(Options{})
	require.NoError(t, err)

	assert.Contains(t, r.SPAShell(), "<title>Loading...</title>")
}
