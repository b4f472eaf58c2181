package classifier

import (
	"strings"

	"github.com/schalder/ecombuildr-edge/pkg/utils"
)

// HomepageSlug is the sentinel page slug used when a system website path
// omits the page segment.
const HomepageSlug = "homepage"

// CrawlerTokens are case-insensitive substrings that identify bot traffic.
// Social preview bots and general search crawlers both receive the rendered
// SEO document; serving search engines the bare SPA shell would leave them
// indexing an empty page.
var CrawlerTokens = []string{
	"facebookexternalhit",
	"facebookcatalog",
	"twitterbot",
	"linkedinbot",
	"whatsapp",
	"slackbot",
	"discordbot",
	"telegrambot",
	"skypeuripreview",
	"pinterestbot",
	"googlebot",
	"bingbot",
	"duckduckbot",
	"baiduspider",
	"yandexbot",
}

// AddressKind discriminates ContentAddress variants.
type AddressKind int

const (
	// KindUnknown matches no addressing scheme (e.g. system-domain root).
	KindUnknown AddressKind = iota
	// KindSystemWebsitePage is /site/:websiteSlug(/:pageSlug)? on a system domain.
	KindSystemWebsitePage
	// KindSystemFunnelStep is /funnel/:funnelId/:stepSlug on a system domain.
	KindSystemFunnelStep
	// KindProduct is /products/:slug on any domain.
	KindProduct
	// KindCustomDomainContent is any other path on a custom domain.
	KindCustomDomainContent
)

// ContentAddress is the classified addressing scheme of a request path.
// Only the fields of the active Kind are meaningful.
type ContentAddress struct {
	Kind AddressKind

	WebsiteSlug string // KindSystemWebsitePage
	PageSlug    string // KindSystemWebsitePage

	FunnelID string // KindSystemFunnelStep (raw path segment, validated later)
	StepSlug string // KindSystemFunnelStep

	ProductSlug string // KindProduct

	Slug   string // KindCustomDomainContent: last non-empty path segment
	IsRoot bool   // KindCustomDomainContent: true for "/" or empty path
}

// Classifier classifies requests by hostname and path.
// It is pure and performs no I/O, so it can run before any store access.
type Classifier struct {
	systemDomains []string
}

// New creates a classifier. systemDomains are the first-party hostname
// suffixes (apex and preview-hosting domains); anything else is a tenant
// custom domain.
func New(systemDomains []string) *Classifier {
	domains := make([]string, 0, len(systemDomains))
	for _, d := range systemDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			domains = append(domains, d)
		}
	}
	return &Classifier{systemDomains: domains}
}

// IsSocialCrawler reports whether the user agent belongs to a known bot.
// Pure substring matching; never fails on odd input.
func IsSocialCrawler(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	ua := strings.ToLower(userAgent)
	for _, token := range CrawlerTokens {
		if strings.Contains(ua, token) {
			return true
		}
	}
	return false
}

// IsSystemDomain reports whether the hostname belongs to the platform itself.
func (c *Classifier) IsSystemDomain(hostname string) bool {
	host := strings.ToLower(utils.StripPort(hostname))
	for _, d := range c.systemDomains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}

// ClassifyPath decides which content-addressing scheme applies to a request.
func (c *Classifier) ClassifyPath(hostname, pathname string) ContentAddress {
	segments := splitPath(pathname)

	// Product paths are addressed the same way on every domain.
	if len(segments) == 2 && segments[0] == "products" {
		return ContentAddress{Kind: KindProduct, ProductSlug: segments[1]}
	}

	if c.IsSystemDomain(hostname) {
		switch {
		case len(segments) >= 2 && segments[0] == "site":
			addr := ContentAddress{Kind: KindSystemWebsitePage, WebsiteSlug: segments[1], PageSlug: HomepageSlug}
			if len(segments) >= 3 {
				addr.PageSlug = segments[2]
			}
			return addr

		case len(segments) >= 3 && segments[0] == "funnel":
			return ContentAddress{Kind: KindSystemFunnelStep, FunnelID: segments[1], StepSlug: segments[2]}
		}
		return ContentAddress{Kind: KindUnknown}
	}

	// Custom domain: the path is opaque, the last segment is a candidate slug
	// that may resolve to either a page or a funnel step.
	slug := utils.LastPathSegment(pathname)
	if slug == "" {
		return ContentAddress{Kind: KindCustomDomainContent, IsRoot: true}
	}
	return ContentAddress{Kind: KindCustomDomainContent, Slug: slug}
}

func splitPath(pathname string) []string {
	var segments []string
	for _, s := range strings.Split(pathname, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
