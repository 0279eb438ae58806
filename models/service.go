package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Slug             string     `gorm:"uniqueIndex;not null" json:"slug"`
	Title            string     `gorm:"not null" json:"title"`
	Category         string     `gorm:"index;not null" json:"category"`
	ShortDescription string     `gorm:"type:text;not null" json:"shortDescription"`
	Description      string     `gorm:"type:text;not null" json:"description"`
	Price            string     `gorm:"not null" json:"price"`
	Duration         string     `gorm:"not null" json:"duration"`
	Image            string     `json:"image"`
	Benefits         StringList `gorm:"type:jsonb;default:'[]'" json:"benefits"`
	Process          StringList `gorm:"type:jsonb;default:'[]'" json:"process"`
	Recovery         string     `json:"recovery"`
	IsActive         bool       `gorm:"default:true" json:"isActive"`
	Order            int        `gorm:"column:\"order\";default:0" json:"order"`
	MetaTitle        string     `json:"metaTitle"`
	MetaDescription  string     `json:"metaDescription"`
	OgImage          string     `json:"ogImage"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
