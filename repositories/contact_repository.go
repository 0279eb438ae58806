package repositories

import (
	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepository interface {
	List() ([]models.ContactMessage, error)
	FindByID(id uuid.UUID) (*models.ContactMessage, error)
	Create(message *models.ContactMessage) error
	Update(message *models.ContactMessage) error
	Delete(id uuid.UUID) error
}

type GormContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) List() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.Order("created_at desc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *GormContactRepository) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &message, nil
}

func (r *GormContactRepository) Create(message *models.ContactMessage) error {
	return translate(r.db.Create(message).Error)
}

func (r *GormContactRepository) Update(message *models.ContactMessage) error {
	return translate(r.db.Save(message).Error)
}

func (r *GormContactRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.ContactMessage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ContactRepository = (*GormContactRepository)(nil)
