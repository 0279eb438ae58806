// controllers/product.go
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

type ProductController struct {
	Repo repositories.ProductRepository
}

func NewProductController(repo repositories.ProductRepository) *ProductController {
	return &ProductController{Repo: repo}
}

type CreateProductInput struct {
	Slug            string   `json:"slug" binding:"required"`
	Name            string   `json:"name" binding:"required"`
	Brand           string   `json:"brand" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Price           string   `json:"price" binding:"required"`
	Image           string   `json:"image"`
	Features        []string `json:"features"`
	IsActive        *bool    `json:"isActive"`
	Order           int      `json:"order"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
}

type UpdateProductInput struct {
	Slug            *string   `json:"slug"`
	Name            *string   `json:"name"`
	Brand           *string   `json:"brand"`
	Category        *string   `json:"category"`
	Description     *string   `json:"description"`
	Price           *string   `json:"price"`
	Image           *string   `json:"image"`
	Features        *[]string `json:"features"`
	IsActive        *bool     `json:"isActive"`
	Order           *int      `json:"order"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
}

func (pc *ProductController) GetProducts(c *gin.Context) {
	filter := repositories.ProductFilter{
		Category: c.Query("category"),
		Active:   boolQuery(c, "active"),
	}

	products, err := pc.Repo.List(filter)
	if err != nil {
		config.Log.Error("Failed to list products", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, products)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := pc.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Ürün bulunamadı")
		} else {
			config.Log.Error("Failed to load product", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if !utils.ValidateSlug(input.Slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Slug sadece küçük harf, rakam ve tire içerebilir")
		return
	}

	if _, err := pc.Repo.FindBySlug(input.Slug); err == nil {
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

	product := models.Product{
		Slug:            input.Slug,
		Name:            input.Name,
		Brand:           input.Brand,
		Category:        input.Category,
		Description:     input.Description,
		Price:           input.Price,
		Image:           input.Image,
		Features:        models.StringList(input.Features),
		IsActive:        isActive,
		Order:           input.Order,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
	}

	if err := pc.Repo.Create(&product); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Bu slug zaten kullanılıyor")
			return
		}
		config.Log.Error("Failed to create product", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if input.Slug != nil && !utils.ValidateSlug(*input.Slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Slug sadece küçük harf, rakam ve tire içerebilir")
		return
	}

	product, err := pc.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Ürün bulunamadı")
		} else {
			config.Log.Error("Failed to load product", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	if input.Slug != nil {
		product.Slug = *input.Slug
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Features != nil {
		product.Features = models.StringList(*input.Features)
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.Order != nil {
		product.Order = *input.Order
	}
	if input.MetaTitle != nil {
		product.MetaTitle = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		product.MetaDescription = *input.MetaDescription
	}

	if err := pc.Repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Bu slug zaten kullanılıyor")
			return
		}
		config.Log.Error("Failed to update product", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := pc.Repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Ürün bulunamadı")
			return
		}
		config.Log.Error("Failed to delete product", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"deleted": true})
}
