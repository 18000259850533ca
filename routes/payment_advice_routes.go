package routes

import (
	"rice-app/config"
	"rice-app/controllers"
	"rice-app/middleware"
	"rice-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPaymentAdviceRoutes(app *fiber.App, db *gorm.DB) {

	api := app.Group(config.MAIN_ROUTES+"/payment-advices", middleware.AuthMiddleware)
	paymentAdviceController := controllers.NewPaymentAdviceController(db, services.NewMailer())

	api.Post("/", paymentAdviceController.CreatePaymentAdvice)
	api.Get("/", paymentAdviceController.GetAllPaymentAdvices)
	api.Get("/:id", paymentAdviceController.GetPaymentAdviceByID)
	api.Get("/:id/pdf", paymentAdviceController.GetPaymentAdvicePDF)
	api.Put("/:id/status", paymentAdviceController.UpdatePaymentAdviceStatus)
}
