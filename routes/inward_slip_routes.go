package routes

import (
	"rice-app/config"
	"rice-app/controllers"
	"rice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInwardSlipRoutes(app *fiber.App, db *gorm.DB) {

	api := app.Group(config.MAIN_ROUTES+"/inward-slip-passes", middleware.AuthMiddleware)
	inwardSlipController := controllers.NewInwardSlipController(db)

	api.Post("/", inwardSlipController.CreateInwardSlip)
	api.Get("/", inwardSlipController.GetAllInwardSlips)
	api.Get("/:id", inwardSlipController.GetInwardSlipByID)
	api.Put("/:id", inwardSlipController.UpdateInwardSlip)
	api.Delete("/:id", inwardSlipController.DeleteInwardSlip)
}
