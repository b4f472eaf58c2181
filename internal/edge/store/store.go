// Package store provides read-only access to the content store. The resolver
// receives a ContentStore by injection; there is no module-level client.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/schalder/ecombuildr-edge/internal/db/models"
)

// ContentStore is the read-only interface the resolver consumes. Every
// lookup returns (nil, nil) when no row matches; an error indicates an
// upstream read failure, which callers treat identically to a miss.
type ContentStore interface {
	// CustomDomainByHost finds a domain by any of the hostname variants
	// (raw, apex, www-prefixed).
	CustomDomainByHost(ctx context.Context, variants []string) (*models.CustomDomain, error)

	// ConnectionsByDomain lists all content connections for a domain.
	ConnectionsByDomain(ctx context.Context, domainID uuid.UUID) ([]models.DomainConnection, error)

	WebsiteByID(ctx context.Context, id uuid.UUID) (*models.Website, error)
	WebsiteBySlug(ctx context.Context, slug string) (*models.Website, error)

	// HomepageForWebsite finds the published page flagged is_homepage.
	HomepageForWebsite(ctx context.Context, websiteID uuid.UUID) (*models.WebsitePage, error)

	// PageBySlug finds a published page by slug within a website.
	PageBySlug(ctx context.Context, websiteID uuid.UUID, slug string) (*models.WebsitePage, error)

	FunnelByID(ctx context.Context, id uuid.UUID) (*models.Funnel, error)

	// FirstStepForFunnel finds the published step with the lowest step_order,
	// the implicit funnel homepage.
	FirstStepForFunnel(ctx context.Context, funnelID uuid.UUID) (*models.FunnelStep, error)

	// StepBySlug finds a published step by slug within a funnel.
	StepBySlug(ctx context.Context, funnelID uuid.UUID, slug string) (*models.FunnelStep, error)

	// ProductBySlug finds an active product by slug.
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
}
