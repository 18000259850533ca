package routes

import (
	"rice-app/config"
	"rice-app/controllers"
	"rice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTransporterRoutes(app *fiber.App, db *gorm.DB) {

	api := app.Group(config.MAIN_ROUTES+"/transporters", middleware.AuthMiddleware)
	transporterController := controllers.NewTransporterController(db)

	api.Post("/", transporterController.CreateTransporter)
	api.Get("/", transporterController.GetAllTransporter)
	api.Get("/:id", transporterController.GetTransporterByID)
	api.Put("/:id", transporterController.UpdateTransporter)
	api.Delete("/:id", transporterController.DeleteTransporter)
}
