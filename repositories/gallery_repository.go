package repositories

import (
	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryFilter struct {
	Category string
	Active   *bool
}

type GalleryRepository interface {
	List(filter GalleryFilter) ([]models.GalleryItem, error)
	FindByID(id uuid.UUID) (*models.GalleryItem, error)
	Create(item *models.GalleryItem) error
	Update(item *models.GalleryItem) error
	Delete(id uuid.UUID) error
}

type GormGalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &GormGalleryRepository{db: db}
}

func (r *GormGalleryRepository) List(filter GalleryFilter) ([]models.GalleryItem, error) {
	query := r.db.Model(&models.GalleryItem{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var items []models.GalleryItem
	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormGalleryRepository) FindByID(id uuid.UUID) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *GormGalleryRepository) Create(item *models.GalleryItem) error {
	return translate(r.db.Create(item).Error)
}

func (r *GormGalleryRepository) Update(item *models.GalleryItem) error {
	return translate(r.db.Save(item).Error)
}

func (r *GormGalleryRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.GalleryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ GalleryRepository = (*GormGalleryRepository)(nil)
