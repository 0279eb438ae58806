// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"clinicpro-backend/config"
	"clinicpro-backend/models"
	"clinicpro-backend/repositories"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServiceController struct {
	Repo repositories.ServiceRepository
}

func NewServiceController(repo repositories.ServiceRepository) *ServiceController {
	return &ServiceController{Repo: repo}
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Slug             string   `json:"slug" binding:"required"`
	Title            string   `json:"title" binding:"required"`
	Category         string   `json:"category" binding:"required"`
	ShortDescription string   `json:"shortDescription" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Price            string   `json:"price" binding:"required"`
	Duration         string   `json:"duration" binding:"required"`
	Image            string   `json:"image"`
	Benefits         []string `json:"benefits"`
	Process          []string `json:"process"`
	Recovery         string   `json:"recovery"`
	IsActive         *bool    `json:"isActive"`
	Order            int      `json:"order"`
	MetaTitle        string   `json:"metaTitle"`
	MetaDescription  string   `json:"metaDescription"`
	OgImage          string   `json:"ogImage"`
}

// UpdateServiceInput is the create schema with every field optional; omitted
// fields are left untouched.
type UpdateServiceInput struct {
	Slug             *string   `json:"slug"`
	Title            *string   `json:"title"`
	Category         *string   `json:"category"`
	ShortDescription *string   `json:"shortDescription"`
	Description      *string   `json:"description"`
	Price            *string   `json:"price"`
	Duration         *string   `json:"duration"`
	Image            *string   `json:"image"`
	Benefits         *[]string `json:"benefits"`
	Process          *[]string `json:"process"`
	Recovery         *string   `json:"recovery"`
	IsActive         *bool     `json:"isActive"`
	Order            *int      `json:"order"`
	MetaTitle        *string   `json:"metaTitle"`
	MetaDescription  *string   `json:"metaDescription"`
	OgImage          *string   `json:"ogImage"`
}

// GetServices retrieves services, optionally filtered by category and active flag
func (sc *ServiceController) GetServices(c *gin.Context) {
	filter := repositories.ServiceFilter{
		Category: c.Query("category"),
		Active:   boolQuery(c, "active"),
	}

	services, err := sc.Repo.List(filter)
	if err != nil {
		config.Log.Error("Failed to list services", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func (sc *ServiceController) GetService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	service, err := sc.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Hizmet bulunamadı")
		} else {
			config.Log.Error("Failed to load service", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, service)
}

// CreateService creates a new service (admin only, enforced at the route)
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if !utils.ValidateSlug(input.Slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Slug sadece küçük harf, rakam ve tire içerebilir")
		return
	}

	if _, err := sc.Repo.FindBySlug(input.Slug); err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Bu slug zaten kullanılıyor")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		config.Log.Error("Slug lookup failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	service := models.Service{
		Slug:             input.Slug,
		Title:            input.Title,
		Category:         input.Category,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		Price:            input.Price,
		Duration:         input.Duration,
		Image:            input.Image,
		Benefits:         models.StringList(input.Benefits),
		Process:          models.StringList(input.Process),
		Recovery:         input.Recovery,
		IsActive:         isActive,
		Order:            input.Order,
		MetaTitle:        input.MetaTitle,
		MetaDescription:  input.MetaDescription,
		OgImage:          input.OgImage,
	}

	if err := sc.Repo.Create(&service); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Bu slug zaten kullanılıyor")
			return
		}
		config.Log.Error("Failed to create service", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, service)
}

// UpdateService updates an existing service
func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if input.Slug != nil && !utils.ValidateSlug(*input.Slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Slug sadece küçük harf, rakam ve tire içerebilir")
		return
	}

	service, err := sc.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Hizmet bulunamadı")
		} else {
			config.Log.Error("Failed to load service", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	// Update fields if provided
	if input.Slug != nil {
		service.Slug = *input.Slug
	}
	if input.Title != nil {
		service.Title = *input.Title
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.ShortDescription != nil {
		service.ShortDescription = *input.ShortDescription
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Image != nil {
		service.Image = *input.Image
	}
	if input.Benefits != nil {
		service.Benefits = models.StringList(*input.Benefits)
	}
	if input.Process != nil {
		service.Process = models.StringList(*input.Process)
	}
	if input.Recovery != nil {
		service.Recovery = *input.Recovery
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}
	if input.Order != nil {
		service.Order = *input.Order
	}
	if input.MetaTitle != nil {
		service.MetaTitle = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		service.MetaDescription = *input.MetaDescription
	}
	if input.OgImage != nil {
		service.OgImage = *input.OgImage
	}

	if err := sc.Repo.Update(service); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Bu slug zaten kullanılıyor")
			return
		}
		config.Log.Error("Failed to update service", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, service)
}

// DeleteService removes a service by id
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := sc.Repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Hizmet bulunamadı")
			return
		}
		config.Log.Error("Failed to delete service", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"deleted": true})
}
