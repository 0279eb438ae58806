package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Slug            string     `gorm:"uniqueIndex;not null" json:"slug"`
	Name            string     `gorm:"not null" json:"name"`
	Brand           string     `gorm:"not null" json:"brand"`
	Category        string     `gorm:"index;not null" json:"category"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	Price           string     `gorm:"not null" json:"price"`
	Image           string     `json:"image"`
	Features        StringList `gorm:"type:jsonb;default:'[]'" json:"features"`
	IsActive        bool       `gorm:"default:true" json:"isActive"`
	Order           int        `gorm:"column:\"order\";default:0" json:"order"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
