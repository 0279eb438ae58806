package repositories

import (
	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceFilter narrows List; zero values mean "no filter".
type ServiceFilter struct {
	Category string
	Active   *bool
}

type ServiceRepository interface {
	List(filter ServiceFilter) ([]models.Service, error)
	FindByID(id uuid.UUID) (*models.Service, error)
	FindBySlug(slug string) (*models.Service, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
	Delete(id uuid.UUID) error
}

type GormServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) List(filter ServiceFilter) ([]models.Service, error) {
	query := r.db.Model(&models.Service{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var services []models.Service
	if err := query.Order(`"order" asc`).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *GormServiceRepository) FindByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *GormServiceRepository) FindBySlug(slug string) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "slug = ?", slug).Error; err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *GormServiceRepository) Create(service *models.Service) error {
	return translate(r.db.Create(service).Error)
}

func (r *GormServiceRepository) Update(service *models.Service) error {
	return translate(r.db.Save(service).Error)
}

func (r *GormServiceRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ServiceRepository = (*GormServiceRepository)(nil)
