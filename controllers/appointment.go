// controllers/appointment.go
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

type AppointmentController struct {
	Repo repositories.AppointmentRepository
}

func NewAppointmentController(repo repositories.AppointmentRepository) *AppointmentController {
	return &AppointmentController{Repo: repo}
}

// CreateAppointmentInput is the public booking form payload.
type CreateAppointmentInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=10"`
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Message string `json:"message"`
}

// UpdateAppointmentStatusInput is the only admin mutation on a booking.
type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

func parseAppointmentDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", raw)
}

// GetAppointments lists bookings for the admin console, optionally by status
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.IsValidAppointmentStatus(status) {
		utils.RespondWithError(c, http.StatusBadRequest, "status geçersiz bir değere sahip")
		return
	}

	appointments, err := ac.Repo.List(repositories.AppointmentFilter{Status: status})
	if err != nil {
		config.Log.Error("Failed to list appointments", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, appointments)
}

func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	appointment, err := ac.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Randevu bulunamadı")
		} else {
			config.Log.Error("Failed to load appointment", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, appointment)
}

// CreateAppointment handles the public booking form; status starts PENDING
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Geçersiz telefon numarası")
		return
	}

	date, err := parseAppointmentDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Geçersiz tarih formatı")
		return
	}

	appointment := models.Appointment{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Service: input.Service,
		Date:    date,
		Time:    input.Time,
		Status:  models.AppointmentStatusPending,
		Message: input.Message,
	}

	if err := ac.Repo.Create(&appointment); err != nil {
		config.Log.Error("Failed to create appointment", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, appointment)
}

// UpdateAppointment transitions the status (admin only)
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	appointment, err := ac.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Randevu bulunamadı")
		} else {
			config.Log.Error("Failed to load appointment", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	appointment.Status = input.Status

	if err := ac.Repo.Update(appointment); err != nil {
		config.Log.Error("Failed to update appointment", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, appointment)
}

func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ac.Repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Randevu bulunamadı")
			return
		}
		config.Log.Error("Failed to delete appointment", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"deleted": true})
}
