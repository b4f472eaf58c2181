package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/schalder/ecombuildr-edge/internal/db/models"
	apperrors "github.com/schalder/ecombuildr-edge/pkg/errors"
)

// GormStore implements ContentStore over a gorm connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a gorm-backed content store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CustomDomainByHost finds a domain matching any hostname variant.
func (s *GormStore) CustomDomainByHost(ctx context.Context, variants []string) (*models.CustomDomain, error) {
	if len(variants) == 0 {
		return nil, nil
	}
	var domain models.CustomDomain
	err := s.db.WithContext(ctx).Where("domain IN ?", variants).First(&domain).Error
	return oneOf(&domain, err)
}

// ConnectionsByDomain lists content connections for a domain.
func (s *GormStore) ConnectionsByDomain(ctx context.Context, domainID uuid.UUID) ([]models.DomainConnection, error) {
	var connections []models.DomainConnection
	err := s.db.WithContext(ctx).
		Where("domain_id = ?", domainID).
		Order("created_at ASC").
		Find(&connections).Error
	if err != nil {
		return nil, readFailed(err)
	}
	return connections, nil
}

// WebsiteByID loads a website row.
func (s *GormStore) WebsiteByID(ctx context.Context, id uuid.UUID) (*models.Website, error) {
	var website models.Website
	err := s.db.WithContext(ctx).First(&website, "id = ?", id).Error
	return oneOf(&website, err)
}

// WebsiteBySlug loads a website by its system-route slug.
func (s *GormStore) WebsiteBySlug(ctx context.Context, slug string) (*models.Website, error) {
	var website models.Website
	err := s.db.WithContext(ctx).First(&website, "slug = ?", slug).Error
	return oneOf(&website, err)
}

// HomepageForWebsite finds the published homepage page of a website.
func (s *GormStore) HomepageForWebsite(ctx context.Context, websiteID uuid.UUID) (*models.WebsitePage, error) {
	var page models.WebsitePage
	err := s.db.WithContext(ctx).
		Where("website_id = ? AND is_homepage = ? AND is_published = ?", websiteID, true, true).
		First(&page).Error
	return oneOf(&page, err)
}

// PageBySlug finds a published page by slug within a website.
func (s *GormStore) PageBySlug(ctx context.Context, websiteID uuid.UUID, slug string) (*models.WebsitePage, error) {
	var page models.WebsitePage
	err := s.db.WithContext(ctx).
		Where("website_id = ? AND slug = ? AND is_published = ?", websiteID, slug, true).
		First(&page).Error
	return oneOf(&page, err)
}

// FunnelByID loads a funnel row.
func (s *GormStore) FunnelByID(ctx context.Context, id uuid.UUID) (*models.Funnel, error) {
	var funnel models.Funnel
	err := s.db.WithContext(ctx).First(&funnel, "id = ?", id).Error
	return oneOf(&funnel, err)
}

// FirstStepForFunnel finds the published step with the lowest step_order.
func (s *GormStore) FirstStepForFunnel(ctx context.Context, funnelID uuid.UUID) (*models.FunnelStep, error) {
	var step models.FunnelStep
	err := s.db.WithContext(ctx).
		Where("funnel_id = ? AND is_published = ?", funnelID, true).
		Order("step_order ASC").
		First(&step).Error
	return oneOf(&step, err)
}

// StepBySlug finds a published step by slug within a funnel.
func (s *GormStore) StepBySlug(ctx context.Context, funnelID uuid.UUID, slug string) (*models.FunnelStep, error) {
	var step models.FunnelStep
	err := s.db.WithContext(ctx).
		Where("funnel_id = ? AND slug = ? AND is_published = ?", funnelID, slug, true).
		First(&step).Error
	return oneOf(&step, err)
}

// ProductBySlug finds an active product by slug.
func (s *GormStore) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	return oneOf(&product, err)
}

// oneOf maps gorm's not-found error to the (nil, nil) miss contract.
func oneOf[T any](row *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, readFailed(err)
	}
	return row, nil
}

// readFailed tags an upstream failure so callers can tell store outages apart
// from ordinary misses with errors.Is.
func readFailed(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrUpstreamRead, err)
}
