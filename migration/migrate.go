package migration

import (
	"rice-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Vendor{},
		&models.Broker{},
		&models.Transporter{},
		&models.Truck{},
		&models.Sauda{},
		&models.InwardSlipPass{},
		&models.InwardSlipLot{},
		&models.Purchase{},
		&models.PaymentAdvice{},
		&models.PaymentCharge{},
		&models.DocumentUpload{},
	)
}
