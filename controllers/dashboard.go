package controllers

import (
	"net/http"

	"clinicpro-backend/config"
	"clinicpro-backend/models"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetOverview aggregates the counters the admin console shows on its landing
// page, plus the five most recent bookings.
func (dc *DashboardController) GetOverview(c *gin.Context) {
	var pendingAppointments int64
	dc.DB.Model(&models.Appointment{}).
		Where("status = ?", models.AppointmentStatusPending).
		Count(&pendingAppointments)

	var totalAppointments int64
	dc.DB.Model(&models.Appointment{}).Count(&totalAppointments)

	var unreadMessages int64
	dc.DB.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&unreadMessages)

	var activeServices int64
	dc.DB.Model(&models.Service{}).Where("is_active = ?", true).Count(&activeServices)

	var activeProducts int64
	dc.DB.Model(&models.Product{}).Where("is_active = ?", true).Count(&activeProducts)

	var publishedPosts int64
	dc.DB.Model(&models.BlogPost{}).Where("is_published = ?", true).Count(&publishedPosts)

	var recentAppointments []models.Appointment
	if err := dc.DB.Order("created_at desc").Limit(5).Find(&recentAppointments).Error; err != nil {
		config.Log.Error("Failed to load recent appointments", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"pendingAppointments": pendingAppointments,
		"totalAppointments":   totalAppointments,
		"unreadMessages":      unreadMessages,
		"activeServices":      activeServices,
		"activeProducts":      activeProducts,
		"publishedPosts":      publishedPosts,
		"recentAppointments":  recentAppointments,
	})
}
