package routes

import (
	"rice-app/config"
	"rice-app/controllers"
	"rice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPurchaseRoutes(app *fiber.App, db *gorm.DB) {

	api := app.Group(config.MAIN_ROUTES+"/purchases", middleware.AuthMiddleware)
	purchaseController := controllers.NewPurchaseController(db)

	api.Post("/", purchaseController.CreatePurchase)
	api.Get("/", purchaseController.GetAllPurchases)
	api.Get("/:id", purchaseController.GetPurchaseByID)
	api.Put("/:id", purchaseController.UpdatePurchase)
	api.Delete("/:id", purchaseController.DeletePurchase)
}
