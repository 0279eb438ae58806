package main

import (
	"os"

	"clinicpro-backend/config"
	"clinicpro-backend/models"
	"clinicpro-backend/repositories"
	"clinicpro-backend/routes"
	"clinicpro-backend/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Running without a .env file is fine in containerized deploys.
	_ = godotenv.Load()

	config.InitLogger()
	config.ConnectDB()

	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Product{},
		&models.BlogPost{},
		&models.GalleryItem{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.SiteSettings{},
		&models.ReminderLog{},
	)
	if err != nil {
		config.Log.Fatal("Database migration failed", zap.Error(err))
	}

	config.Log.Info("Database migrated")
}

func main() {
	settingsRepo := repositories.NewSettingsRepository(config.DB)
	if _, err := settingsRepo.GetOrCreate(); err != nil {
		config.Log.Fatal("Failed to initialize site settings", zap.Error(err))
	}

	if os.Getenv("REMINDERS_ENABLED") == "true" {
		reminderService := services.NewReminderService(
			repositories.NewAppointmentRepository(config.DB),
			config.DB,
		)
		reminderService.StartScheduler()
	}

	router := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Log.Info("Server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		config.Log.Fatal("Server stopped", zap.Error(err))
	}
}
