// controllers/settings.go
package controllers

import (
	"net/http"

	"clinicpro-backend/config"
	"clinicpro-backend/models"
	"clinicpro-backend/repositories"
	"clinicpro-backend/store"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingsController struct {
	Repo  repositories.SettingsRepository
	cache *store.Collection[models.SiteSettings]
}

func NewSettingsController(repo repositories.SettingsRepository) *SettingsController {
	return &SettingsController{
		Repo:  repo,
		cache: store.NewCollection(func(s models.SiteSettings) string { return s.ID }),
	}
}

type UpdateSiteSettingsInput struct {
	SiteName     *string            `json:"siteName"`
	Phone        *string            `json:"phone"`
	Email        *string            `json:"email" binding:"omitempty,email"`
	Address      *string            `json:"address"`
	Whatsapp     *string            `json:"whatsapp"`
	Instagram    *string            `json:"instagram"`
	Facebook     *string            `json:"facebook"`
	Twitter      *string            `json:"twitter"`
	Youtube      *string            `json:"youtube"`
	MapEmbedUrl  *string            `json:"mapEmbedUrl"`
	WorkingHours *map[string]string `json:"workingHours"`
}

// GetSettings serves the singleton row through the read cache; the first call
// after boot or after a mutation hits the repository.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	rows, err := sc.cache.Load(func() ([]models.SiteSettings, error) {
		settings, err := sc.Repo.GetOrCreate()
		if err != nil {
			return nil, err
		}
		return []models.SiteSettings{*settings}, nil
	})
	if err != nil {
		config.Log.Error("Failed to load site settings", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, rows[0])
}

// UpdateSettings applies a partial patch and upserts the singleton (admin only)
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var input UpdateSiteSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	settings, err := sc.Repo.GetOrCreate()
	if err != nil {
		config.Log.Error("Failed to load site settings", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	if input.SiteName != nil {
		settings.SiteName = *input.SiteName
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.Email != nil {
		settings.Email = *input.Email
	}
	if input.Address != nil {
		settings.Address = *input.Address
	}
	if input.Whatsapp != nil {
		settings.Whatsapp = *input.Whatsapp
	}
	if input.Instagram != nil {
		settings.Instagram = *input.Instagram
	}
	if input.Facebook != nil {
		settings.Facebook = *input.Facebook
	}
	if input.Twitter != nil {
		settings.Twitter = *input.Twitter
	}
	if input.Youtube != nil {
		settings.Youtube = *input.Youtube
	}
	if input.MapEmbedUrl != nil {
		settings.MapEmbedUrl = *input.MapEmbedUrl
	}
	if input.WorkingHours != nil {
		hours := models.JSONB{}
		for label, value := range *input.WorkingHours {
			hours[label] = value
		}
		settings.WorkingHours = hours
	}

	if err := sc.Repo.Save(settings); err != nil {
		config.Log.Error("Failed to save site settings", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	// Next read goes back to the repository for the persisted record.
	sc.cache.Invalidate()

	utils.RespondWithData(c, http.StatusOK, settings)
}
