// controllers/gallery.go
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

type GalleryController struct {
	Repo repositories.GalleryRepository
}

func NewGalleryController(repo repositories.GalleryRepository) *GalleryController {
	return &GalleryController{Repo: repo}
}

type CreateGalleryItemInput struct {
	Category    string `json:"category" binding:"required"`
	Service     string `json:"service" binding:"required"`
	BeforeImage string `json:"beforeImage" binding:"required"`
	AfterImage  string `json:"afterImage" binding:"required"`
	Description string `json:"description" binding:"required"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateGalleryItemInput struct {
	Category    *string `json:"category"`
	Service     *string `json:"service"`
	BeforeImage *string `json:"beforeImage"`
	AfterImage  *string `json:"afterImage"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

func (gc *GalleryController) GetItems(c *gin.Context) {
	filter := repositories.GalleryFilter{
		Category: c.Query("category"),
		Active:   boolQuery(c, "active"),
	}

	items, err := gc.Repo.List(filter)
	if err != nil {
		config.Log.Error("Failed to list gallery items", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, items)
}

func (gc *GalleryController) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := gc.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Galeri öğesi bulunamadı")
		} else {
			config.Log.Error("Failed to load gallery item", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, item)
}

func (gc *GalleryController) CreateItem(c *gin.Context) {
	var input CreateGalleryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	item := models.GalleryItem{
		Category:    input.Category,
		Service:     input.Service,
		BeforeImage: input.BeforeImage,
		AfterImage:  input.AfterImage,
		Description: input.Description,
		IsActive:    isActive,
	}

	if err := gc.Repo.Create(&item); err != nil {
		config.Log.Error("Failed to create gallery item", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, item)
}

func (gc *GalleryController) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateGalleryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	item, err := gc.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Galeri öğesi bulunamadı")
		} else {
			config.Log.Error("Failed to load gallery item", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Service != nil {
		item.Service = *input.Service
	}
	if input.BeforeImage != nil {
		item.BeforeImage = *input.BeforeImage
	}
	if input.AfterImage != nil {
		item.AfterImage = *input.AfterImage
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := gc.Repo.Update(item); err != nil {
		config.Log.Error("Failed to update gallery item", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, item)
}

func (gc *GalleryController) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := gc.Repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Galeri öğesi bulunamadı")
			return
		}
		config.Log.Error("Failed to delete gallery item", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"deleted": true})
}
