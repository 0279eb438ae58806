package repositories

import (
	"errors"

	"clinicpro-backend/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetOrCreate() (*models.SiteSettings, error)
	Save(settings *models.SiteSettings) error
}

type GormSettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetOrCreate reads the singleton row and seeds the defaults when it is
// missing. Two concurrent first reads can both observe "missing"; the loser
// hits the primary-key conflict and falls back to re-reading the winner's row.
func (r *GormSettingsRepository) GetOrCreate() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.First(&settings, "id = ?", models.SiteSettingsID).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.DefaultSiteSettings()
	if createErr := translate(r.db.Create(&settings).Error); createErr != nil {
		if errors.Is(createErr, ErrDuplicate) {
			if err := r.db.First(&settings, "id = ?", models.SiteSettingsID).Error; err != nil {
				return nil, err
			}
			return &settings, nil
		}
		return nil, createErr
	}
	return &settings, nil
}

func (r *GormSettingsRepository) Save(settings *models.SiteSettings) error {
	settings.ID = models.SiteSettingsID
	return translate(r.db.Save(settings).Error)
}

var _ SettingsRepository = (*GormSettingsRepository)(nil)
