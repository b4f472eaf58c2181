package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomDomain represents a tenant-owned hostname mapped to a store
type CustomDomain struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Domain        string    `gorm:"uniqueIndex;not null"`
	StoreID       uuid.UUID `gorm:"type:uuid;not null;index"`
	IsVerified    bool      `gorm:"default:false"`
	DNSConfigured bool      `gorm:"column:dns_configured;default:false"`
	CreatedAt     time.Time

	// Relationships
	Connections []DomainConnection `gorm:"foreignKey:DomainID"`
}

// BeforeCreate hook to set UUID if not provided
func (d *CustomDomain) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (CustomDomain) TableName() string {
	return "custom_domains"
}
