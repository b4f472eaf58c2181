package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Funnel represents a sales funnel container
type Funnel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null"`
	Slug    string    `gorm:"uniqueIndex;not null"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index"`

	SEOTitle       string `gorm:"column:seo_title"`
	SEODescription string `gorm:"column:seo_description"`
	OGImage        string `gorm:"column:og_image"`
	SocialImageURL string `gorm:"column:social_image_url"`
	MetaRobots     string
	CanonicalDomain string `gorm:"column:canonical_domain"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Steps []FunnelStep `gorm:"foreignKey:FunnelID"`
}

// BeforeCreate hook to set UUID if not provided
func (f *Funnel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (Funnel) TableName() string {
	return "funnels"
}
