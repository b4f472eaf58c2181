// Package renderer emits the crawler-servable HTML document and the SPA
// shell. All tenant-supplied strings pass through html/template's contextual
// escaping; tenant content is never interpolated raw.
package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/schalder/ecombuildr-edge/internal/edge/seo"
)

// DefaultLocale is emitted as og:locale when none is configured.
const DefaultLocale = "en_US"

// Options configures the renderer.
type Options struct {
	// Locale for og:locale, e.g. "en_US".
	Locale string
	// FallbackTitle and FallbackDescription fill the SPA shell metadata.
	FallbackTitle       string
	FallbackDescription string
	// AssetBase prefixes the SPA shell's client bundle URLs.
	AssetBase string
}

// Renderer renders HTML documents from SEO records. Templates are compiled
// once at construction; rendering is pure after that.
type Renderer struct {
	crawlerTmpl *template.Template
	spaShell    string
	locale      string
}

type crawlerData struct {
	Title       string
	Description string
	Image       string
	Keywords    string
	Canonical   string
	Robots      string
	SiteName    string
	Locale      string
	JSONLD      template.JS
}

type spaData struct {
	Title       string
	Description string
	AssetBase   string
}

// New creates a renderer and pre-renders the static SPA shell.
func New(opts Options) (*Renderer, error) {
	crawlerTmpl, err := template.ParseFS(templatesFS, "templates/crawler.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse crawler template: %w", err)
	}
	spaTmpl, err := template.ParseFS(templatesFS, "templates/spa.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse spa template: %w", err)
	}

	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if opts.FallbackTitle == "" {
		opts.FallbackTitle = "Loading..."
	}

	// The shell is identical for every request; render it once.
	var buf bytes.Buffer
	err = spaTmpl.Execute(&buf, spaData{
		Title:       opts.FallbackTitle,
		Description: opts.FallbackDescription,
		AssetBase:   opts.AssetBase,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render spa shell: %w", err)
	}

	return &Renderer{
		crawlerTmpl: crawlerTmpl,
		spaShell:    buf.String(),
		locale:      opts.Locale,
	}, nil
}

// CrawlerHTML renders the full crawler-facing document for a record.
func (r *Renderer) CrawlerHTML(rec *seo.Record) (string, error) {
	jsonLD, err := buildJSONLD(rec)
	if err != nil {
		return "", fmt.Errorf("failed to build JSON-LD: %w", err)
	}

	var buf bytes.Buffer
	err = r.crawlerTmpl.Execute(&buf, crawlerData{
		Title:       rec.Title,
		Description: rec.Description,
		Image:       rec.Image,
		Keywords:    strings.Join(rec.Keywords, ", "),
		Canonical:   rec.Canonical,
		Robots:      rec.Robots,
		SiteName:    rec.SiteName,
		Locale:      r.locale,
		JSONLD:      template.JS(jsonLD),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render crawler document: %w", err)
	}
	return buf.String(), nil
}

// SPAShell returns the pre-rendered single-page-app shell.
func (r *Renderer) SPAShell() string {
	return r.spaShell
}

// buildJSONLD marshals the WebPage structured-data block. encoding/json
// escapes angle brackets, so the output is safe inside the script element.
func buildJSONLD(rec *seo.Record) ([]byte, error) {
	publisher := map[string]interface{}{
		"@type": "Organization",
		"name":  rec.SiteName,
	}
	if rec.Image != "" {
		publisher["logo"] = map[string]interface{}{
			"@type": "ImageObject",
			"url":   rec.Image,
		}
	}

	page := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebPage",
		"name":        rec.Title,
		"description": rec.Description,
		"url":         rec.Canonical,
		"publisher":   publisher,
	}
	if rec.Image != "" {
		page["image"] = rec.Image
	}

	return json.Marshal(page)
}
