package routes

import (
	"rice-app/config"
	"rice-app/controllers"
	"rice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSaudaRoutes(app *fiber.App, db *gorm.DB) {

	api := app.Group(config.MAIN_ROUTES+"/saudas", middleware.AuthMiddleware)
	saudaController := controllers.NewSaudaController(db)

	api.Post("/", saudaController.CreateSauda)
	api.Get("/", saudaController.GetAllSaudas)
	api.Get("/:id", saudaController.GetSaudaByID)
	api.Put("/:id", saudaController.UpdateSauda)
	api.Put("/:id/status", saudaController.UpdateSaudaStatus)
	api.Delete("/:id", saudaController.DeleteSauda)
}
