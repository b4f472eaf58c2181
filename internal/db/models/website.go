package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Website represents a tenant website container
type Website struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Description string
	Settings    datatypes.JSON `gorm:"type:json"`
	StoreID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	Pages []WebsitePage `gorm:"foreignKey:WebsiteID"`
}

// WebsiteSettings is the typed shape of the settings JSON column.
// The dashboard writes this payload; only the SEO-relevant subset is modeled.
type WebsiteSettings struct {
	SEO struct {
		Title          string `json:"title"`
		Description    string `json:"description"`
		OGImage        string `json:"og_image"`
		SocialImageURL string `json:"social_image_url"`
	} `json:"seo"`
	Branding struct {
		SocialImageURL string `json:"social_image_url"`
		Logo           string `json:"logo"`
	} `json:"branding"`
	Favicon string `json:"favicon"`
}

// DecodeSettings parses the settings JSON column. Malformed or empty payloads
// decode to the zero value; settings are a fallback source, never required.
func (w *Website) DecodeSettings() WebsiteSettings {
	var s WebsiteSettings
	if len(w.Settings) == 0 {
		return s
	}
	if err := json.Unmarshal(w.Settings, &s); err != nil {
		return WebsiteSettings{}
	}
	return s
}

// BeforeCreate hook to set UUID if not provided
func (w *Website) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (Website) TableName() string {
	return "websites"
}
