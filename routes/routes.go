// routes/routes.go
package routes

import (
	"os"
	"strings"
	"time"

	"clinicpro-backend/config"
	"clinicpro-backend/controllers"
	"clinicpro-backend/models"
	"clinicpro-backend/repositories"
	"clinicpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	origins := []string{"http://localhost:3000"}

	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}
	if site := os.Getenv("SITE_URL"); site != "" {
		origins = append(origins, site)
	}

	return origins
}

func SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(config.PerformanceLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	db := config.DB
	authController := controllers.NewAuthController(repositories.NewUserRepository(db))
	serviceController := controllers.NewServiceController(repositories.NewServiceRepository(db))
	productController := controllers.NewProductController(repositories.NewProductRepository(db))
	blogController := controllers.NewBlogController(repositories.NewBlogRepository(db))
	galleryController := controllers.NewGalleryController(repositories.NewGalleryRepository(db))
	appointmentController := controllers.NewAppointmentController(repositories.NewAppointmentRepository(db))
	contactController := controllers.NewContactController(repositories.NewContactRepository(db))
	settingsController := controllers.NewSettingsController(repositories.NewSettingsRepository(db))
	dashboardController := controllers.NewDashboardController(db)

	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/reset-password", authController.ResetPassword)
		auth.GET("/me", utils.AuthMiddleware(), authController.Me)
	}

	api := router.Group("/api")
	{
		// Public site surface
		api.GET("/services", serviceController.GetServices)
		api.GET("/services/:id", serviceController.GetService)
		api.GET("/products", productController.GetProducts)
		api.GET("/products/:id", productController.GetProduct)
		api.GET("/blog", blogController.GetPosts)
		api.GET("/blog/:id", blogController.GetPost)
		api.GET("/gallery", galleryController.GetItems)
		api.GET("/gallery/:id", galleryController.GetItem)
		api.GET("/settings", settingsController.GetSettings)
		api.POST("/appointments", appointmentController.CreateAppointment)
		api.POST("/contact", contactController.CreateMessage)

		// Admin console surface
		admin := api.Group("")
		admin.Use(utils.AuthMiddleware(models.RoleAdmin))
		{
			admin.POST("/services", serviceController.CreateService)
			admin.PUT("/services/:id", serviceController.UpdateService)
			admin.DELETE("/services/:id", serviceController.DeleteService)

			admin.POST("/products", productController.CreateProduct)
			admin.PUT("/products/:id", productController.UpdateProduct)
			admin.DELETE("/products/:id", productController.DeleteProduct)

			admin.POST("/blog", blogController.CreatePost)
			admin.PUT("/blog/:id", blogController.UpdatePost)
			admin.DELETE("/blog/:id", blogController.DeletePost)

			admin.POST("/gallery", galleryController.CreateItem)
			admin.PUT("/gallery/:id", galleryController.UpdateItem)
			admin.DELETE("/gallery/:id", galleryController.DeleteItem)

			admin.GET("/appointments", appointmentController.GetAppointments)
			admin.GET("/appointments/:id", appointmentController.GetAppointment)
			admin.PUT("/appointments/:id", appointmentController.UpdateAppointment)
			admin.DELETE("/appointments/:id", appointmentController.DeleteAppointment)

			admin.GET("/contact", contactController.GetMessages)
			admin.PUT("/contact/:id", contactController.UpdateMessage)
			admin.DELETE("/contact/:id", contactController.DeleteMessage)

			admin.PUT("/settings", settingsController.UpdateSettings)

			admin.GET("/dashboard", dashboardController.GetOverview)
		}
	}

	return router
}
