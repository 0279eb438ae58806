package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryItem is a before/after image pair shown on the public gallery page.
type GalleryItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Category    string    `gorm:"index;not null" json:"category"`
	Service     string    `gorm:"not null" json:"service"`
	BeforeImage string    `gorm:"not null" json:"beforeImage"`
	AfterImage  string    `gorm:"not null" json:"afterImage"`
	Description string    `gorm:"type:text;not null" json:"description"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (g *GalleryItem) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}
