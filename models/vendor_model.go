package models

import "gorm.io/gorm"

type Vendor struct {
	gorm.Model
	VendorCode    string `json:"vendor_code" gorm:"unique"`
	VendorName    string `json:"vendor_name" gorm:"unique"`
	VendorAddress string `json:"vendor_address"`
	VendorCity    string `json:"vendor_city"`
	Gstin         string `json:"gstin"`
	VendorPhone   string `json:"vendor_phone"`
	VendorEmail   string `json:"vendor_email"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}
