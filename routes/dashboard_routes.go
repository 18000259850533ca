package routes

import (
	"rice-app/config"
	"rice-app/controllers"
	"rice-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {

	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware)
	dashboardController := controllers.NewDashboardController(db)

	api.Get("/leaderboard", dashboardController.GetLeaderboard)
	api.Get("/leaderboard/export", dashboardController.ExportLeaderboard)
	api.Get("/monthly", dashboardController.GetMonthlySummary)
}
