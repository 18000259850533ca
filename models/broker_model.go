package models

import "gorm.io/gorm"

type Broker struct {
	gorm.Model
	BrokerName        string  `json:"broker_name" gorm:"unique"`
	BrokerAddress     string  `json:"broker_address"`
	BrokerPhone       string  `json:"broker_phone"`
	BrokerEmail       string  `json:"broker_email"`
	DefaultCommission float64 `json:"default_commission"` // rupees per quintal
	CreatedBy         int
	UpdatedBy         int
	DeletedBy         int
}
