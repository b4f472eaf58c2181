// Package handler wires classifier, resolver and renderer into the
// tenant-facing HTTP surface.
package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/schalder/ecombuildr-edge/internal/edge/classifier"
	"github.com/schalder/ecombuildr-edge/internal/edge/renderer"
	"github.com/schalder/ecombuildr-edge/internal/edge/resolver"
	"github.com/schalder/ecombuildr-edge/internal/edge/seo"
	"github.com/schalder/ecombuildr-edge/pkg/logger"
	"github.com/schalder/ecombuildr-edge/pkg/utils"
)

// DefaultCacheMaxAge is the Cache-Control max-age in seconds. Tenant content
// changes infrequently relative to crawl frequency.
const DefaultCacheMaxAge = 180

// Options configures the edge handler.
type Options struct {
	// CacheMaxAge is the Cache-Control max-age/s-maxage in seconds.
	CacheMaxAge int
	// DebugHeaders enables the per-field X-SEO-*-Source provenance headers.
	DebugHeaders bool
}

// Handler serves the edge surface: crawler documents for bot and
// custom-domain traffic, the SPA shell for everything else.
type Handler struct {
	classifier   *classifier.Classifier
	resolver     *resolver.Resolver
	renderer     *renderer.Renderer
	cacheControl string
	debugHeaders bool
}

// New creates the edge handler.
func New(c *classifier.Classifier, res *resolver.Resolver, ren *renderer.Renderer, opts Options) *Handler {
	maxAge := opts.CacheMaxAge
	if maxAge <= 0 {
		maxAge = DefaultCacheMaxAge
	}
	return &Handler{
		classifier:   c,
		resolver:     res,
		renderer:     ren,
		cacheControl: fmt.Sprintf("public, max-age=%d, s-maxage=%d", maxAge, maxAge),
		debugHeaders: opts.DebugHeaders,
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	traceID := uuid.New().String()

	// Nothing below should panic, but tenant data shapes are not under our
	// control; a crawler must get a plain 500 rather than a stack trace.
	defer func() {
		if rec := recover(); rec != nil {
			logger.ErrorEvent().
				Interface("panic", rec).
				Str("trace_id", traceID).
				Str("host", r.Host).
				Str("path", r.URL.Path).
				Msg("Panic while serving edge request")

			requestsTotal.WithLabelValues(outcomeError).Inc()
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintln(w, "Internal server error")
		}
	}()

	hostname := requestHostname(r)
	pathname := r.URL.Path
	userAgent := r.UserAgent()

	isCrawler := classifier.IsSocialCrawler(userAgent)
	isSystem := h.classifier.IsSystemDomain(hostname)

	if isCrawler {
		crawlerRequestsTotal.Inc()
	}

	w.Header().Set("X-Trace-Id", traceID)

	// Ordinary browser traffic on system domains gets the SPA shell without
	// touching the content store.
	if !isCrawler && isSystem {
		requestsTotal.WithLabelValues(outcomeSPAShell).Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", h.cacheControl)
		fmt.Fprint(w, h.renderer.SPAShell())
		return
	}

	resolveStart := time.Now()
	rec := h.resolver.Resolve(r.Context(), hostname, pathname)
	resolveDuration.Observe(time.Since(resolveStart).Seconds())

	outcome := outcomeResolved
	if rec == nil {
		// A crawler never gets an error page for a missing record.
		rec = seo.Minimal(hostname, pathname)
		outcome = outcomeFallback
	}

	html, err := h.renderer.CrawlerHTML(rec)
	if err != nil {
		logger.ErrorEvent().
			Err(err).
			Str("trace_id", traceID).
			Str("host", hostname).
			Str("path", pathname).
			Msg("Failed to render crawler document")

		requestsTotal.WithLabelValues(outcomeError).Inc()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintln(w, "Internal server error")
		return
	}

	requestsTotal.WithLabelValues(outcome).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", h.cacheControl)
	w.Header().Set("X-SEO-Source", rec.Source)
	if h.debugHeaders {
		w.Header().Set("X-SEO-Domain", hostname)
		w.Header().Set("X-SEO-Path", pathname)
		w.Header().Set("X-SEO-Title-Source", rec.TitleSource)
		w.Header().Set("X-SEO-Desc-Source", rec.DescriptionSource)
		w.Header().Set("X-SEO-Image-Source", rec.ImageSource)
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(html)))
	fmt.Fprint(w, html)

	logger.InfoEvent().
		Str("trace_id", traceID).
		Str("host", hostname).
		Str("path", pathname).
		Str("source", rec.Source).
		Bool("crawler", isCrawler).
		Dur("duration", time.Since(start)).
		Msg("Edge request served")
}

// requestHostname prefers the forwarded host headers over the URL host;
// load balancers may rewrite the latter.
func requestHostname(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		return utils.StripPort(fwd)
	}
	if r.Host != "" {
		return utils.StripPort(r.Host)
	}
	return utils.StripPort(r.URL.Host)
}
