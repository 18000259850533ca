package main

import (
	"log"

	"rice-app/config"
	"rice-app/controllers/idgen"
	"rice-app/database"
	"rice-app/middleware"
	"rice-app/migration"
	"rice-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})

	db, err := database.OpenDatabaseConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)
	middleware.Init(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupVendorRoutes(app, db)
	routes.SetupBrokerRoutes(app, db)
	routes.SetupTransporterRoutes(app, db)
	routes.SetupTruckRoutes(app, db)
	routes.SetupSaudaRoutes(app, db)
	routes.SetupInwardSlipRoutes(app, db)
	routes.SetupPurchaseRoutes(app, db)
	routes.SetupPaymentAdviceRoutes(app, db)
	routes.SetupUploadRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)

	log.Fatal(app.Listen(":" + config.APP_PORT))
}
