// controllers/blog.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"clinicpro-backend/config"
	"clinicpro-backend/models"
	"clinicpro-backend/repositories"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BlogController struct {
	Repo repositories.BlogRepository
}

func NewBlogController(repo repositories.BlogRepository) *BlogController {
	return &BlogController{Repo: repo}
}

type CreateBlogPostInput struct {
	Slug            string   `json:"slug" binding:"required"`
	Title           string   `json:"title" binding:"required"`
	Excerpt         string   `json:"excerpt" binding:"required"`
	Content         string   `json:"content" binding:"required"`
	Author          string   `json:"author" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Image           string   `json:"image"`
	Tags            []string `json:"tags"`
	ReadTime        string   `json:"readTime" binding:"required"`
	IsPublished     *bool    `json:"isPublished"`
	PublishedAt     *string  `json:"publishedAt"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
}

type UpdateBlogPostInput struct {
	Slug            *string   `json:"slug"`
	Title           *string   `json:"title"`
	Excerpt         *string   `json:"excerpt"`
	Content         *string   `json:"content"`
	Author          *string   `json:"author"`
	Category        *string   `json:"category"`
	Image           *string   `json:"image"`
	Tags            *[]string `json:"tags"`
	ReadTime        *string   `json:"readTime"`
	IsPublished     *bool     `json:"isPublished"`
	PublishedAt     *string   `json:"publishedAt"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
}

func parsePublishedAt(raw string) (*time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (bc *BlogController) GetPosts(c *gin.Context) {
	filter := repositories.BlogFilter{
		Category:  c.Query("category"),
		Published: boolQuery(c, "published"),
	}

	posts, err := bc.Repo.List(filter)
	if err != nil {
		config.Log.Error("Failed to list blog posts", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, posts)
}

func (bc *BlogController) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := bc.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Yazı bulunamadı")
		} else {
			config.Log.Error("Failed to load blog post", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, post)
}

func (bc *BlogController) CreatePost(c *gin.Context) {
	var input CreateBlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if !utils.ValidateSlug(input.Slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Slug sadece küçük harf, rakam ve tire içerebilir")
		return
	}

	if _, err := bc.Repo.FindBySlug(input.Slug); err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Bu slug zaten kullanılıyor")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		config.Log.Error("Slug lookup failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	var publishedAt *time.Time
	if input.PublishedAt != nil && *input.PublishedAt != "" {
		parsed, err := parsePublishedAt(*input.PublishedAt)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "publishedAt geçersiz tarih formatında")
			return
		}
		publishedAt = parsed
	}

	isPublished := false
	if input.IsPublished != nil {
		isPublished = *input.IsPublished
	}

	post := models.BlogPost{
		Slug:            input.Slug,
		Title:           input.Title,
		Excerpt:         input.Excerpt,
		Content:         input.Content,
		Author:          input.Author,
		Category:        input.Category,
		Image:           input.Image,
		Tags:            models.StringList(input.Tags),
		ReadTime:        input.ReadTime,
		IsPublished:     isPublished,
		PublishedAt:     publishedAt,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
	}

	if err := bc.Repo.Create(&post); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Bu slug zaten kullanılıyor")
			return
		}
		config.Log.Error("Failed to create blog post", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, post)
}

func (bc *BlogController) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateBlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if input.Slug != nil && !utils.ValidateSlug(*input.Slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Slug sadece küçük harf, rakam ve tire içerebilir")
		return
	}

	post, err := bc.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Yazı bulunamadı")
		} else {
			config.Log.Error("Failed to load blog post", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	if input.Slug != nil {
		post.Slug = *input.Slug
	}
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.Image != nil {
		post.Image = *input.Image
	}
	if input.Tags != nil {
		post.Tags = models.StringList(*input.Tags)
	}
	if input.ReadTime != nil {
		post.ReadTime = *input.ReadTime
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}
	if input.PublishedAt != nil {
		if *input.PublishedAt == "" {
			post.PublishedAt = nil
		} else {
			parsed, err := parsePublishedAt(*input.PublishedAt)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "publishedAt geçersiz tarih formatında")
				return
			}
			post.PublishedAt = parsed
		}
	}
	if input.MetaTitle != nil {
		post.MetaTitle = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		post.MetaDescription = *input.MetaDescription
	}

	if err := bc.Repo.Update(post); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Bu slug zaten kullanılıyor")
			return
		}
		config.Log.Error("Failed to update blog post", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, post)
}

func (bc *BlogController) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := bc.Repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Yazı bulunamadı")
			return
		}
		config.Log.Error("Failed to delete blog post", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"deleted": true})
}
