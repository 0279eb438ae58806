// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"clinicpro-backend/config"
	"clinicpro-backend/models"
	"clinicpro-backend/repositories"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderService sends next-day booking reminders over Twilio and records
// every attempt in reminder_logs.
type ReminderService struct {
	appointments repositories.AppointmentRepository
	db           *gorm.DB
	client       *twilio.RestClient
}

func NewReminderService(appointments repositories.AppointmentRepository, db *gorm.DB) *ReminderService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: os.Getenv("TWILIO_ACCOUNT_SID"),
		Password: os.Getenv("TWILIO_AUTH_TOKEN"),
	})

	return &ReminderService{
		appointments: appointments,
		db:           db,
		client:       client,
	}
}

// StartScheduler runs SendDailyReminders every morning at 09:00.
func (rs *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 9 * * *", func() {
		config.Log.Info("Running daily reminder job")
		rs.SendDailyReminders()
	})
	if err != nil {
		config.Log.Error("Failed to schedule reminder job", zap.Error(err))
		return c
	}

	c.Start()
	config.Log.Info("Reminder scheduler started", zap.String("schedule", "daily 09:00"))
	return c
}

// SendDailyReminders notifies every confirmed booking that falls on tomorrow.
func (rs *ReminderService) SendDailyReminders() {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)

	appointments, err := rs.appointments.FindConfirmedBetween(start, end)
	if err != nil {
		config.Log.Error("Failed to load tomorrow's appointments", zap.Error(err))
		return
	}

	if len(appointments) == 0 {
		config.Log.Info("No confirmed appointments for tomorrow")
		return
	}

	for _, appointment := range appointments {
		rs.sendReminder(&appointment)
	}

	config.Log.Info("Daily reminders processed", zap.Int("count", len(appointments)))
}

func (rs *ReminderService) sendReminder(appointment *models.Appointment) {
	message := fmt.Sprintf(
		"Sayın %s, yarın saat %s için %s randevunuz bulunmaktadır. Görüşmek üzere!",
		appointment.Name,
		appointment.Time,
		appointment.Service,
	)

	channel := "sms"
	to := appointment.Phone
	from := os.Getenv("TWILIO_PHONE_NUMBER")

	if strings.HasPrefix(appointment.Phone, "+") && os.Getenv("TWILIO_WHATSAPP_NUMBER") != "" {
		channel = "whatsapp"
		to = "whatsapp:" + appointment.Phone
		from = "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	log := models.ReminderLog{
		AppointmentID: appointment.ID,
		Message:       message,
		Channel:       channel,
		Status:        "sent",
		SentAt:        time.Now(),
	}

	if _, err := rs.client.Api.CreateMessage(params); err != nil {
		log.Status = "failed"
		log.ErrorMessage = err.Error()
		config.Log.Error("Failed to send reminder",
			zap.String("appointmentId", appointment.ID.String()),
			zap.Error(err),
		)
	} else {
		config.Log.Info("Reminder sent",
			zap.String("appointmentId", appointment.ID.String()),
			zap.String("channel", channel),
		)
	}

	if err := rs.db.Create(&log).Error; err != nil {
		config.Log.Error("Failed to record reminder log", zap.Error(err))
	}
}
