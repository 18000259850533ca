package routes

import (
	"rice-app/config"
	"rice-app/controllers"
	"rice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBrokerRoutes(app *fiber.App, db *gorm.DB) {

	api := app.Group(config.MAIN_ROUTES+"/brokers", middleware.AuthMiddleware)
	brokerController := controllers.NewBrokerController(db)

	api.Post("/", brokerController.CreateBroker)
	api.Get("/", brokerController.GetAllBrokers)
	api.Get("/:id", brokerController.GetBrokerByID)
	api.Put("/:id", brokerController.UpdateBroker)
	api.Delete("/:id", brokerController.DeleteBroker)
}
