package models

import "gorm.io/gorm"

type Truck struct {
	gorm.Model
	TruckNo       string `json:"truck_no" gorm:"unique"`
	TransporterID uint   `json:"transporter_id" gorm:"index"`
	DriverName    string `json:"driver_name"`
	DriverPhone   string `json:"driver_phone"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}
