package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product represents a storefront product
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"not null"`
	Description string
	Images      datatypes.JSONSlice[string]
	IsActive    bool      `gorm:"default:true;index"`
	StoreID     uuid.UUID `gorm:"type:uuid;index"`

	SEOTitle       string                      `gorm:"column:seo_title"`
	SEODescription string                      `gorm:"column:seo_description"`
	OGImage        string                      `gorm:"column:og_image"`
	SEOKeywords    datatypes.JSONSlice[string] `gorm:"column:seo_keywords"`
	CanonicalURL   string                      `gorm:"column:canonical_url"`
	MetaRobots     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate hook to set UUID if not provided
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}
