package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content types a domain connection can point at
const (
	ContentTypeWebsite    = "website"
	ContentTypeFunnel     = "funnel"
	ContentTypeCourseArea = "course_area"
)

// DomainConnection links a custom domain to a content container.
// At most one connection per domain should be flagged is_homepage; data
// violating that is tolerated by taking the first match.
type DomainConnection struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DomainID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ContentType string    `gorm:"not null"` // website, funnel, course_area
	ContentID   uuid.UUID `gorm:"type:uuid;not null"`
	Path        string
	IsHomepage  bool      `gorm:"default:false"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time

	// Relationships
	Domain CustomDomain `gorm:"foreignKey:DomainID"`
}

// BeforeCreate hook to set UUID if not provided
func (c *DomainConnection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (DomainConnection) TableName() string {
	return "domain_connections"
}
