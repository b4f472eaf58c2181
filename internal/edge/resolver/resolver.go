// Package resolver walks the content-store fallback chain to turn a
// classified request into a normalized SEO record.
package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/schalder/ecombuildr-edge/internal/db/models"
	"github.com/schalder/ecombuildr-edge/internal/edge/classifier"
	"github.com/schalder/ecombuildr-edge/internal/edge/seo"
	"github.com/schalder/ecombuildr-edge/internal/edge/store"
	"github.com/schalder/ecombuildr-edge/pkg/logger"
	"github.com/schalder/ecombuildr-edge/pkg/utils"
)

// Resolver resolves requests against the content store. The store is
// injected at construction; resolution never writes.
type Resolver struct {
	store      store.ContentStore
	classifier *classifier.Classifier
}

// New creates a resolver.
func New(contentStore store.ContentStore, c *classifier.Classifier) *Resolver {
	return &Resolver{
		store:      contentStore,
		classifier: c,
	}
}

// Resolve finds the most specific content entity addressed by the request
// and builds its SEO record. Returns nil when nothing matches; it never
// returns an error — upstream read failures are logged and treated as
// misses so the caller can degrade to a minimal record.
func (r *Resolver) Resolve(ctx context.Context, hostname, pathname string) *seo.Record {
	addr := r.classifier.ClassifyPath(hostname, pathname)

	switch addr.Kind {
	case classifier.KindProduct:
		return r.resolveProduct(ctx, addr.ProductSlug, hostname, pathname)

	case classifier.KindSystemWebsitePage:
		return r.resolveSystemWebsitePage(ctx, addr, hostname, pathname)

	case classifier.KindSystemFunnelStep:
		return r.resolveSystemFunnelStep(ctx, addr, hostname, pathname)

	case classifier.KindCustomDomainContent:
		return r.resolveCustomDomain(ctx, addr, hostname, pathname)

	default:
		return nil
	}
}

// resolveCustomDomain walks domain -> connections -> entity.
func (r *Resolver) resolveCustomDomain(ctx context.Context, addr classifier.ContentAddress, hostname, pathname string) *seo.Record {
	// Malformed hosts can never match a stored domain; skip the lookup.
	if !utils.IsValidHostname(hostname) {
		return nil
	}

	domain, err := r.store.CustomDomainByHost(ctx, utils.HostVariants(hostname))
	if err != nil {
		r.logReadFailure("custom_domain", hostname, err)
		return nil
	}
	if domain == nil {
		return nil
	}

	connections, err := r.store.ConnectionsByDomain(ctx, domain.ID)
	if err != nil {
		r.logReadFailure("domain_connections", hostname, err)
		return nil
	}
	if len(connections) == 0 {
		return nil
	}

	if addr.IsRoot {
		conn := pickRootConnection(connections)
		return r.resolveConnection(ctx, conn, "", true, hostname, pathname)
	}

	// Non-root: a published funnel-step slug wins over website routing when
	// the domain hosts both; probe the funnel connections first.
	for _, conn := range connections {
		if conn.ContentType != models.ContentTypeFunnel {
			continue
		}
		if rec := r.resolveFunnelStepBySlug(ctx, conn.ContentID, addr.Slug, hostname, pathname); rec != nil {
			return rec
		}
	}

	if conn := firstOfType(connections, models.ContentTypeWebsite); conn != nil {
		return r.resolveConnection(ctx, *conn, addr.Slug, false, hostname, pathname)
	}
	if conn := firstOfType(connections, models.ContentTypeCourseArea); conn != nil {
		return seo.CourseArea(hostname, pathname)
	}
	return nil
}

// pickRootConnection applies the root-path connection precedence: the
// homepage flag first, then website over funnel over course area.
func pickRootConnection(connections []models.DomainConnection) models.DomainConnection {
	for _, c := range connections {
		if c.IsHomepage {
			return c
		}
	}
	for _, contentType := range []string{models.ContentTypeWebsite, models.ContentTypeFunnel, models.ContentTypeCourseArea} {
		if c := firstOfType(connections, contentType); c != nil {
			return *c
		}
	}
	return connections[0]
}

func firstOfType(connections []models.DomainConnection, contentType string) *models.DomainConnection {
	for i := range connections {
		if connections[i].ContentType == contentType {
			return &connections[i]
		}
	}
	return nil
}

// resolveConnection resolves one connection to its entity record.
func (r *Resolver) resolveConnection(ctx context.Context, conn models.DomainConnection, slug string, isRoot bool, hostname, pathname string) *seo.Record {
	switch conn.ContentType {
	case models.ContentTypeWebsite:
		return r.resolveWebsiteContent(ctx, conn.ContentID, slug, isRoot, hostname, pathname)

	case models.ContentTypeFunnel:
		funnel, err := r.store.FunnelByID(ctx, conn.ContentID)
		if err != nil {
			r.logReadFailure("funnel", hostname, err)
			return nil
		}
		if funnel == nil {
			return nil
		}

		var step *models.FunnelStep
		if isRoot {
			step, err = r.store.FirstStepForFunnel(ctx, funnel.ID)
		} else {
			step, err = r.store.StepBySlug(ctx, funnel.ID, slug)
		}
		if err != nil {
			r.logReadFailure("funnel_step", hostname, err)
			return nil
		}
		if step == nil {
			// A funnel with no matching step is not a valid page; there is
			// no funnel-level fallback.
			return nil
		}
		return seo.FromStep(step, funnel, hostname, pathname)

	case models.ContentTypeCourseArea:
		return seo.CourseArea(hostname, pathname)

	default:
		return nil
	}
}

// resolveWebsiteContent loads a website and its page, degrading to the
// website-level SEO defaults when no page matches.
func (r *Resolver) resolveWebsiteContent(ctx context.Context, websiteID uuid.UUID, slug string, isRoot bool, hostname, pathname string) *seo.Record {
	website, err := r.store.WebsiteByID(ctx, websiteID)
	if err != nil {
		r.logReadFailure("website", hostname, err)
		return nil
	}
	if website == nil {
		return nil
	}

	var page *models.WebsitePage
	if isRoot {
		page, err = r.store.HomepageForWebsite(ctx, website.ID)
	} else {
		page, err = r.store.PageBySlug(ctx, website.ID, slug)
	}
	if err != nil {
		r.logReadFailure("website_page", hostname, err)
		page = nil
	}
	if page == nil {
		return seo.FromWebsite(website, hostname, pathname)
	}
	return seo.FromPage(page, website, hostname, pathname)
}

// resolveFunnelStepBySlug probes a funnel connection for a published step
// matching the slug. Used by the custom-domain ambiguity rule.
func (r *Resolver) resolveFunnelStepBySlug(ctx context.Context, funnelID uuid.UUID, slug string, hostname, pathname string) *seo.Record {
	step, err := r.store.StepBySlug(ctx, funnelID, slug)
	if err != nil {
		r.logReadFailure("funnel_step", hostname, err)
		return nil
	}
	if step == nil {
		return nil
	}

	funnel, err := r.store.FunnelByID(ctx, funnelID)
	if err != nil {
		r.logReadFailure("funnel", hostname, err)
		return nil
	}
	if funnel == nil {
		return nil
	}
	return seo.FromStep(step, funnel, hostname, pathname)
}

// resolveSystemWebsitePage handles /site/:websiteSlug(/:pageSlug)? — the
// content-based fast path that skips domain lookup.
func (r *Resolver) resolveSystemWebsitePage(ctx context.Context, addr classifier.ContentAddress, hostname, pathname string) *seo.Record {
	website, err := r.store.WebsiteBySlug(ctx, addr.WebsiteSlug)
	if err != nil {
		r.logReadFailure("website", hostname, err)
		return nil
	}
	if website == nil {
		return nil
	}

	var page *models.WebsitePage
	if addr.PageSlug == classifier.HomepageSlug {
		page, err = r.store.HomepageForWebsite(ctx, website.ID)
	} else {
		page, err = r.store.PageBySlug(ctx, website.ID, addr.PageSlug)
	}
	if err != nil {
		r.logReadFailure("website_page", hostname, err)
		page = nil
	}
	if page == nil {
		return seo.FromWebsite(website, hostname, pathname)
	}
	return seo.FromPage(page, website, hostname, pathname)
}

// resolveSystemFunnelStep handles /funnel/:funnelId/:stepSlug.
func (r *Resolver) resolveSystemFunnelStep(ctx context.Context, addr classifier.ContentAddress, hostname, pathname string) *seo.Record {
	funnelID, err := uuid.Parse(addr.FunnelID)
	if err != nil {
		return nil
	}

	funnel, err := r.store.FunnelByID(ctx, funnelID)
	if err != nil {
		r.logReadFailure("funnel", hostname, err)
		return nil
	}
	if funnel == nil {
		return nil
	}

	step, err := r.store.StepBySlug(ctx, funnel.ID, addr.StepSlug)
	if err != nil {
		r.logReadFailure("funnel_step", hostname, err)
		return nil
	}
	if step == nil {
		return nil
	}
	return seo.FromStep(step, funnel, hostname, pathname)
}

// resolveProduct handles /products/:slug on any domain.
func (r *Resolver) resolveProduct(ctx context.Context, slug, hostname, pathname string) *seo.Record {
	product, err := r.store.ProductBySlug(ctx, slug)
	if err != nil {
		r.logReadFailure("product", hostname, err)
		return nil
	}
	if product == nil {
		return nil
	}
	return seo.FromProduct(product, hostname, pathname)
}

// logReadFailure records an upstream read failure. Failed reads are
// equivalent to misses; the chain degrades instead of erroring.
func (r *Resolver) logReadFailure(table, hostname string, err error) {
	logger.WarnEvent().
		Err(err).
		Str("table", table).
		Str("host", hostname).
		Msg("Content store read failed, treating as not found")
}
