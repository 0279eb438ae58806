// controllers/contact.go
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

type ContactController struct {
	Repo repositories.ContactRepository
}

func NewContactController(repo repositories.ContactRepository) *ContactController {
	return &ContactController{Repo: repo}
}

type CreateContactMessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required,min=10"`
}

// UpdateContactMessageInput exists so the admin can mark a message read.
type UpdateContactMessageInput struct {
	IsRead *bool `json:"isRead"`
}

func (cc *ContactController) GetMessages(c *gin.Context) {
	messages, err := cc.Repo.List()
	if err != nil {
		config.Log.Error("Failed to list contact messages", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, messages)
}

// CreateMessage handles the public contact form
func (cc *ContactController) CreateMessage(c *gin.Context) {
	var input CreateContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Geçersiz telefon numarası")
		return
	}

	message := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := cc.Repo.Create(&message); err != nil {
		config.Log.Error("Failed to create contact message", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, message)
}

// UpdateMessage toggles the read flag (admin only)
func (cc *ContactController) UpdateMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	message, err := cc.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Mesaj bulunamadı")
		} else {
			config.Log.Error("Failed to load contact message", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	if input.IsRead != nil {
		message.IsRead = *input.IsRead
	}

	if err := cc.Repo.Update(message); err != nil {
		config.Log.Error("Failed to update contact message", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, message)
}

func (cc *ContactController) DeleteMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := cc.Repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Mesaj bulunamadı")
			return
		}
		config.Log.Error("Failed to delete contact message", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"deleted": true})
}
