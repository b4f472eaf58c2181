package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FunnelStep represents one step in a funnel's ordered sequence.
// The published step with the lowest step_order is the implicit funnel homepage.
type FunnelStep struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FunnelID uuid.UUID `gorm:"type:uuid;not null;index:idx_steps_funnel_slug"`
	Slug     string    `gorm:"index:idx_steps_funnel_slug"`
	Name     string    `gorm:"not null"`

	StepOrder   int  `gorm:"default:0"`
	IsPublished bool `gorm:"default:false;index"`

	SEOTitle       string                      `gorm:"column:seo_title"`
	SEODescription string                      `gorm:"column:seo_description"`
	OGImage        string                      `gorm:"column:og_image"`
	SocialImageURL string                      `gorm:"column:social_image_url"`
	SEOKeywords    datatypes.JSONSlice[string] `gorm:"column:seo_keywords"`
	CanonicalURL   string                      `gorm:"column:canonical_url"`
	MetaRobots     string
	Content        datatypes.JSON `gorm:"type:json"`

	OnSuccessStepID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Funnel Funnel `gorm:"foreignKey:FunnelID"`
}

// BeforeCreate hook to set UUID if not provided
func (s *FunnelStep) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (FunnelStep) TableName() string {
	return "funnel_steps"
}
