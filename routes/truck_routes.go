package routes

import (
	"rice-app/config"
	"rice-app/controllers"
	"rice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTruckRoutes(app *fiber.App, db *gorm.DB) {

	api := app.Group(config.MAIN_ROUTES+"/trucks", middleware.AuthMiddleware)
	truckController := controllers.NewTruckController(db)

	api.Post("/", truckController.CreateTruck)
	api.Get("/", truckController.GetAllTrucks)
	api.Get("/:id", truckController.GetTruckByID)
	api.Put("/:id", truckController.UpdateTruck)
	api.Delete("/:id", truckController.DeleteTruck)
}
