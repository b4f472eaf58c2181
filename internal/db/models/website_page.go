package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WebsitePage represents a page within a website
type WebsitePage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	WebsiteID uuid.UUID `gorm:"type:uuid;not null;index:idx_pages_website_slug"`
	Slug      string    `gorm:"index:idx_pages_website_slug"`
	Title     string    `gorm:"not null"`

	IsHomepage  bool `gorm:"default:false"`
	IsPublished bool `gorm:"default:false;index"`

	SEOTitle        string                       `gorm:"column:seo_title"`
	SEODescription  string                       `gorm:"column:seo_description"`
	OGImage         string                       `gorm:"column:og_image"`
	SocialImageURL  string                       `gorm:"column:social_image_url"`
	PreviewImageURL string                       `gorm:"column:preview_image_url"`
	SEOKeywords     datatypes.JSONSlice[string]  `gorm:"column:seo_keywords"`
	CanonicalURL    string                       `gorm:"column:canonical_url"`
	MetaRobots      string
	Content         datatypes.JSON `gorm:"type:json"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Website Website `gorm:"foreignKey:WebsiteID"`
}

// BeforeCreate hook to set UUID if not provided
func (p *WebsitePage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (WebsitePage) TableName() string {
	return "website_pages"
}
