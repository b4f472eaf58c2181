package store

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/schalder/ecombuildr-edge/internal/db/models"
)

// Fake is an in-memory ContentStore for tests. It counts reads so tests can
// assert that non-qualifying requests never touch the store, and can be
// forced to fail to exercise upstream-read degradation.
type Fake struct {
	Domains     []models.CustomDomain
	Connections []models.DomainConnection
	Websites    []models.Website
	Pages       []models.WebsitePage
	Funnels     []models.Funnel
	Steps       []models.FunnelStep
	Products    []models.Product

	// FailWith, when set, is returned by every lookup.
	FailWith error

	reads atomic.Int64
}

var _ ContentStore = (*Fake)(nil)

// NewFake creates an empty fake store.
func NewFake() *Fake {
	return &Fake{}
}

// Reads returns the number of lookups performed.
func (f *Fake) Reads() int64 {
	return f.reads.Load()
}

func (f *Fake) read() error {
	f.reads.Add(1)
	return f.FailWith
}

// CustomDomainByHost implements ContentStore.
func (f *Fake) CustomDomainByHost(_ context.Context, variants []string) (*models.CustomDomain, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	for _, v := range variants {
		for i := range f.Domains {
			if strings.EqualFold(f.Domains[i].Domain, v) {
				return &f.Domains[i], nil
			}
		}
	}
	return nil, nil
}

// ConnectionsByDomain implements ContentStore.
func (f *Fake) ConnectionsByDomain(_ context.Context, domainID uuid.UUID) ([]models.DomainConnection, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	var out []models.DomainConnection
	for _, c := range f.Connections {
		if c.DomainID == domainID {
			out = append(out, c)
		}
	}
	return out, nil
}

// WebsiteByID implements ContentStore.
func (f *Fake) WebsiteByID(_ context.Context, id uuid.UUID) (*models.Website, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	for i := range f.Websites {
		if f.Websites[i].ID == id {
			return &f.Websites[i], nil
		}
	}
	return nil, nil
}

// WebsiteBySlug implements ContentStore.
func (f *Fake) WebsiteBySlug(_ context.Context, slug string) (*models.Website, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	for i := range f.Websites {
		if f.Websites[i].Slug == slug {
			return &f.Websites[i], nil
		}
	}
	return nil, nil
}

// HomepageForWebsite implements ContentStore.
func (f *Fake) HomepageForWebsite(_ context.Context, websiteID uuid.UUID) (*models.WebsitePage, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	for i := range f.Pages {
		p := &f.Pages[i]
		if p.WebsiteID == websiteID && p.IsHomepage && p.IsPublished {
			return p, nil
		}
	}
	return nil, nil
}

// PageBySlug implements ContentStore.
func (f *Fake) PageBySlug(_ context.Context, websiteID uuid.UUID, slug string) (*models.WebsitePage, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	for i := range f.Pages {
		p := &f.Pages[i]
		if p.WebsiteID == websiteID && p.Slug == slug && p.IsPublished {
			return p, nil
		}
	}
	return nil, nil
}

// FunnelByID implements ContentStore.
func (f *Fake) FunnelByID(_ context.Context, id uuid.UUID) (*models.Funnel, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	for i := range f.Funnels {
		if f.Funnels[i].ID == id {
			return &f.Funnels[i], nil
		}
	}
	return nil, nil
}

// FirstStepForFunnel implements ContentStore.
func (f *Fake) FirstStepForFunnel(_ context.Context, funnelID uuid.UUID) (*models.FunnelStep, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	var best *models.FunnelStep
	for i := range f.Steps {
		s := &f.Steps[i]
		if s.FunnelID != funnelID || !s.IsPublished {
			continue
		}
		if best == nil || s.StepOrder < best.StepOrder {
			best = s
		}
	}
	return best, nil
}

// StepBySlug implements ContentStore.
func (f *Fake) StepBySlug(_ context.Context, funnelID uuid.UUID, slug string) (*models.FunnelStep, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	for i := range f.Steps {
		s := &f.Steps[i]
		if s.FunnelID == funnelID && s.Slug == slug && s.IsPublished {
			return s, nil
		}
	}
	return nil, nil
}

// ProductBySlug implements ContentStore.
func (f *Fake) ProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	if err := f.read(); err != nil {
		return nil, err
	}
	for i := range f.Products {
		p := &f.Products[i]
		if p.Slug == slug && p.IsActive {
			return p, nil
		}
	}
	return nil, nil
}
