// Package seo builds normalized, render-ready SEO records from content
// entities, applying the field-level fallback precedence uniformly.
package seo

import (
	"net/url"
	"strings"
)

// Provenance values recorded per field for diagnostic headers.
const (
	SourceExplicit       = "explicit"
	SourceEntityTitle    = "entity_title"
	SourceContentExtract = "content_extract"
	SourceTitleFallback  = "title_fallback"
	SourceContainer      = "container"
	SourceNone           = "none"
)

// DefaultRobots is used when an entity sets no meta_robots directive.
const DefaultRobots = "index, follow"

// Record is the normalized output of resolution. Title, Description,
// Canonical and Robots are always non-empty; Image is either an absolute
// http(s) URL or empty.
type Record struct {
	Title       string
	Description string
	Image       string
	Keywords    []string
	Canonical   string
	Robots      string
	SiteName    string

	// Source identifies which resolution tier produced the record,
	// e.g. "website_page|website:<id>|page:<id>". Diagnostic only.
	Source string

	// Per-field provenance, surfaced as X-SEO-*-Source debug headers.
	TitleSource       string
	DescriptionSource string
	ImageSource       string
}

// ValidImageURL reports whether s is an absolute http(s) URL. Relative or
// malformed image values are treated as absent and never propagated.
func ValidImageURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// firstValidImage returns the first candidate that is an absolute http(s)
// URL, or "".
func firstValidImage(candidates ...string) string {
	for _, c := range candidates {
		if ValidImageURL(c) {
			return strings.TrimSpace(c)
		}
	}
	return ""
}

// CanonicalFor picks the entity canonical when set, otherwise synthesizes
// one from the request hostname and path. Root paths normalize to a
// trailing slash.
func CanonicalFor(entityCanonical, hostname, path string) string {
	if c := strings.TrimSpace(entityCanonical); c != "" {
		return c
	}
	return SynthesizeCanonical(hostname, path)
}

// SynthesizeCanonical builds https://{hostname}{path} for the request.
func SynthesizeCanonical(hostname, path string) string {
	hostname = strings.TrimSpace(hostname)
	if path == "" || path == "/" {
		return "https://" + hostname + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "https://" + hostname + path
}

// robotsOr returns the entity robots directive or the default.
func robotsOr(metaRobots string) string {
	if r := strings.TrimSpace(metaRobots); r != "" {
		return r
	}
	return DefaultRobots
}

// nonEmpty returns the trimmed value and whether anything remains.
func nonEmpty(s string) (string, bool) {
	t := strings.TrimSpace(s)
	return t, t != ""
}
