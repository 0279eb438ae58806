package repositories

import (
	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductFilter struct {
	Category string
	Active   *bool
}

type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, error)
	FindByID(id uuid.UUID) (*models.Product, error)
	FindBySlug(slug string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uuid.UUID) error
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(filter ProductFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var products []models.Product
	if err := query.Order(`"order" asc`).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormProductRepository) FindBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "slug = ?", slug).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormProductRepository) Create(product *models.Product) error {
	return translate(r.db.Create(product).Error)
}

func (r *GormProductRepository) Update(product *models.Product) error {
	return translate(r.db.Save(product).Error)
}

func (r *GormProductRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ProductRepository = (*GormProductRepository)(nil)
