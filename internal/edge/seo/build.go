package seo

import (
	"fmt"

	"github.com/schalder/ecombuildr-edge/internal/db/models"
	"github.com/schalder/ecombuildr-edge/internal/edge/content"
)

// FromPage builds a record for a website page. Each field falls back
// independently; one field's fallback never affects another's.
func FromPage(page *models.WebsitePage, website *models.Website, hostname, path string) *Record {
	rec := &Record{
		SiteName: website.Name,
		Source:   fmt.Sprintf("website_page|website:%s|page:%s", website.ID, page.ID),
	}

	fallbackTitle := fmt.Sprintf("%s - %s", page.Title, website.Name)

	if t, ok := nonEmpty(page.SEOTitle); ok {
		rec.Title = t
		rec.TitleSource = SourceExplicit
	} else {
		rec.Title = fallbackTitle
		rec.TitleSource = SourceEntityTitle
	}

	if d, ok := nonEmpty(page.SEODescription); ok {
		rec.Description = d
		rec.DescriptionSource = SourceExplicit
	} else if extracted := content.Extract(content.Decode(page.Content), content.DefaultMaxLength); extracted != "" {
		rec.Description = extracted
		rec.DescriptionSource = SourceContentExtract
	} else {
		rec.Description = fallbackTitle
		rec.DescriptionSource = SourceTitleFallback
	}

	// Image fallback is all-or-nothing at the entity level: a page with any
	// valid own image never inherits the website image.
	if own := firstValidImage(page.SocialImageURL, page.OGImage, page.PreviewImageURL); own != "" {
		rec.Image = own
		rec.ImageSource = SourceExplicit
	} else if container := websiteImage(website); container != "" {
		rec.Image = container
		rec.ImageSource = SourceContainer
	} else {
		rec.ImageSource = SourceNone
	}

	rec.Canonical = CanonicalFor(page.CanonicalURL, hostname, path)
	rec.Robots = robotsOr(page.MetaRobots)
	rec.Keywords = []string(page.SEOKeywords)

	return rec
}

// FromWebsite builds a website-level record when no page matched. Websites
// degrade to their settings.seo defaults rather than failing.
func FromWebsite(website *models.Website, hostname, path string) *Record {
	settings := website.DecodeSettings()

	rec := &Record{
		SiteName: website.Name,
		Source:   fmt.Sprintf("website|website:%s", website.ID),
	}

	if t, ok := nonEmpty(settings.SEO.Title); ok {
		rec.Title = t
		rec.TitleSource = SourceExplicit
	} else {
		rec.Title = website.Name
		rec.TitleSource = SourceEntityTitle
	}

	if d, ok := nonEmpty(settings.SEO.Description); ok {
		rec.Description = d
		rec.DescriptionSource = SourceExplicit
	} else if d, ok := nonEmpty(website.Description); ok {
		rec.Description = d
		rec.DescriptionSource = SourceEntityTitle
	} else {
		rec.Description = website.Name
		rec.DescriptionSource = SourceTitleFallback
	}

	if img := websiteImage(website); img != "" {
		rec.Image = img
		rec.ImageSource = SourceContainer
	} else {
		rec.ImageSource = SourceNone
	}

	rec.Canonical = SynthesizeCanonical(hostname, path)
	rec.Robots = DefaultRobots

	return rec
}

// FromStep builds a record for a funnel step.
func FromStep(step *models.FunnelStep, funnel *models.Funnel, hostname, path string) *Record {
	rec := &Record{
		SiteName: funnel.Name,
		Source:   fmt.Sprintf("funnel_step|funnel:%s|step:%s", funnel.ID, step.ID),
	}

	fallbackTitle := fmt.Sprintf("%s - %s", step.Name, funnel.Name)

	if t, ok := nonEmpty(step.SEOTitle); ok {
		rec.Title = t
		rec.TitleSource = SourceExplicit
	} else {
		rec.Title = fallbackTitle
		rec.TitleSource = SourceEntityTitle
	}

	if d, ok := nonEmpty(step.SEODescription); ok {
		rec.Description = d
		rec.DescriptionSource = SourceExplicit
	} else if extracted := content.Extract(content.Decode(step.Content), content.DefaultMaxLength); extracted != "" {
		rec.Description = extracted
		rec.DescriptionSource = SourceContentExtract
	} else {
		rec.Description = fallbackTitle
		rec.DescriptionSource = SourceTitleFallback
	}

	if own := firstValidImage(step.SocialImageURL, step.OGImage); own != "" {
		rec.Image = own
		rec.ImageSource = SourceExplicit
	} else if container := firstValidImage(funnel.OGImage, funnel.SocialImageURL); container != "" {
		rec.Image = container
		rec.ImageSource = SourceContainer
	} else {
		rec.ImageSource = SourceNone
	}

	rec.Canonical = CanonicalFor(step.CanonicalURL, hostname, path)
	rec.Robots = robotsOr(step.MetaRobots)
	rec.Keywords = []string(step.SEOKeywords)

	return rec
}

// FromProduct builds a record for a storefront product.
func FromProduct(product *models.Product, hostname, path string) *Record {
	rec := &Record{
		SiteName: product.Name,
		Source:   fmt.Sprintf("product|product:%s", product.ID),
	}

	if t, ok := nonEmpty(product.SEOTitle); ok {
		rec.Title = t
		rec.TitleSource = SourceExplicit
	} else {
		rec.Title = product.Name
		rec.TitleSource = SourceEntityTitle
	}

	if d, ok := nonEmpty(product.SEODescription); ok {
		rec.Description = d
		rec.DescriptionSource = SourceExplicit
	} else if d, ok := nonEmpty(product.Description); ok {
		rec.Description = d
		rec.DescriptionSource = SourceEntityTitle
	} else {
		rec.Description = product.Name
		rec.DescriptionSource = SourceTitleFallback
	}

	candidates := []string{product.OGImage}
	candidates = append(candidates, product.Images...)
	if img := firstValidImage(candidates...); img != "" {
		rec.Image = img
		rec.ImageSource = SourceExplicit
	} else {
		rec.ImageSource = SourceNone
	}

	rec.Canonical = CanonicalFor(product.CanonicalURL, hostname, path)
	rec.Robots = robotsOr(product.MetaRobots)
	rec.Keywords = []string(product.SEOKeywords)

	return rec
}

// CourseArea returns the fixed record for course-area connections; there is
// no per-course resolution in this layer, and members areas stay out of
// search indexes.
func CourseArea(hostname, path string) *Record {
	return &Record{
		Title:             "Members Area",
		Description:       "Sign in to access your courses and content.",
		Canonical:         SynthesizeCanonical(hostname, path),
		Robots:            "noindex, nofollow",
		SiteName:          hostname,
		Source:            "course_area",
		TitleSource:       SourceContainer,
		DescriptionSource: SourceContainer,
		ImageSource:       SourceNone,
	}
}

// Minimal is the last-resort record when resolution found nothing. A crawler
// gets a generic but valid document, never an error page.
func Minimal(hostname, path string) *Record {
	return &Record{
		Title:             hostname,
		Description:       fmt.Sprintf("Preview of %s", hostname),
		Canonical:         SynthesizeCanonical(hostname, path),
		Robots:            DefaultRobots,
		SiteName:          hostname,
		Source:            "fallback",
		TitleSource:       SourceNone,
		DescriptionSource: SourceNone,
		ImageSource:       SourceNone,
	}
}

// websiteImage walks the website-level image fallback chain.
func websiteImage(website *models.Website) string {
	s := website.DecodeSettings()
	return firstValidImage(
		s.SEO.OGImage,
		s.SEO.SocialImageURL,
		s.Branding.SocialImageURL,
		s.Branding.Logo,
		s.Favicon,
	)
}
