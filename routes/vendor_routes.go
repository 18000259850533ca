package routes

import (
	"rice-app/config"
	"rice-app/controllers"
	"rice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVendorRoutes(app *fiber.App, db *gorm.DB) {

	api := app.Group(config.MAIN_ROUTES+"/vendors", middleware.AuthMiddleware)
	vendorController := controllers.NewVendorController(db)

	api.Post("/upload-excel", vendorController.CreateVendorFromExcel)
	api.Post("/", vendorController.CreateVendor)
	api.Get("/", vendorController.GetAllVendors)
	api.Get("/:id", vendorController.GetVendorByID)
	api.Put("/:id", vendorController.UpdateVendor)
	api.Delete("/:id", vendorController.DeleteVendor)
}
