package routes

import (
	"rice-app/config"
	"rice-app/controllers"
	"rice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUploadRoutes(app *fiber.App, db *gorm.DB) {

	api := app.Group(config.MAIN_ROUTES+"/uploads", middleware.AuthMiddleware)
	uploadController := controllers.NewUploadController(db)

	api.Post("/", uploadController.UploadDocument)
}
