package repositories

import (
	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogFilter struct {
	Category  string
	Published *bool
}

type BlogRepository interface {
	List(filter BlogFilter) ([]models.BlogPost, error)
	FindByID(id uuid.UUID) (*models.BlogPost, error)
	FindBySlug(slug string) (*models.BlogPost, error)
	Create(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(id uuid.UUID) error
}

type GormBlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &GormBlogRepository{db: db}
}

func (r *GormBlogRepository) List(filter BlogFilter) ([]models.BlogPost, error) {
	query := r.db.Model(&models.BlogPost{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Published != nil {
		query = query.Where("is_published = ?", *filter.Published)
	}

	var posts []models.BlogPost
	if err := query.Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *GormBlogRepository) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *GormBlogRepository) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "slug = ?", slug).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *GormBlogRepository) Create(post *models.BlogPost) error {
	return translate(r.db.Create(post).Error)
}

func (r *GormBlogRepository) Update(post *models.BlogPost) error {
	return translate(r.db.Save(post).Error)
}

func (r *GormBlogRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ BlogRepository = (*GormBlogRepository)(nil)
