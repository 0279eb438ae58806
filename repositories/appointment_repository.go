package repositories

import (
	"time"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentFilter struct {
	Status string
}

type AppointmentRepository interface {
	List(filter AppointmentFilter) ([]models.Appointment, error)
	FindByID(id uuid.UUID) (*models.Appointment, error)
	FindConfirmedBetween(start, end time.Time) ([]models.Appointment, error)
	Create(appointment *models.Appointment) error
	Update(appointment *models.Appointment) error
	Delete(id uuid.UUID) error
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) List(filter AppointmentFilter) ([]models.Appointment, error) {
	query := r.db.Model(&models.Appointment{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var appointments []models.Appointment
	if err := query.Order("created_at desc").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) FindByID(id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.First(&appointment, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

// FindConfirmedBetween is used by the reminder scheduler.
func (r *GormAppointmentRepository) FindConfirmedBetween(start, end time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Where("status = ? AND date >= ? AND date < ?", models.AppointmentStatusConfirmed, start, end).
		Order("date asc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) Create(appointment *models.Appointment) error {
	return translate(r.db.Create(appointment).Error)
}

func (r *GormAppointmentRepository) Update(appointment *models.Appointment) error {
	return translate(r.db.Save(appointment).Error)
}

func (r *GormAppointmentRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ AppointmentRepository = (*GormAppointmentRepository)(nil)
