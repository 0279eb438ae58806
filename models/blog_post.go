package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Slug            string     `gorm:"uniqueIndex;not null" json:"slug"`
	Title           string     `gorm:"not null" json:"title"`
	Excerpt         string     `gorm:"type:text;not null" json:"excerpt"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	Author          string     `gorm:"not null" json:"author"`
	Category        string     `gorm:"index;not null" json:"category"`
	Image           string     `json:"image"`
	Tags            StringList `gorm:"type:jsonb;default:'[]'" json:"tags"`
	ReadTime        string     `json:"readTime"`
	IsPublished     bool       `gorm:"index;default:false" json:"isPublished"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
