package models

import (
	"rice-app/controllers/idgen"
	"rice-app/types"

	"gorm.io/gorm"
)

// Purchase links a vendor to a sauda and carries the uploaded trade documents.
type Purchase struct {
	gorm.Model
	ID            types.SnowflakeID  `json:"id" gorm:"primary_key"`
	PurchaseNo    string             `json:"purchase_no" gorm:"unique"`
	SaudaID       types.SnowflakeID  `json:"sauda_id" gorm:"uniqueIndex"`
	VendorID      uint               `json:"vendor_id" gorm:"index"`
	InwardSlipID  *types.SnowflakeID `json:"inward_slip_id"`
	Rate          float64            `json:"rate"`
	TotalWeight   float64            `json:"total_weight"`
	TotalAmount   float64            `json:"total_amount"`
	IgstPercent   float64            `json:"igst_percent"`
	IgstAmount    float64            `json:"igst_amount"`
	PurchaseDate  string             `gorm:"type:date" json:"purchase_date"`
	TransportBill string             `json:"transportation_bill_url"`
	PurchaseBill  string             `json:"purchase_bill_url"`
	Bilti         string             `json:"bilti_url"`
	EwayBill      string             `json:"eway_bill_url"`
	Remarks       string             `json:"remarks"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == 0 {
		p.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}

// PurchaseIgst computes the IGST amount from the taxable total.
func PurchaseIgst(totalAmount, igstPercent float64) float64 {
	return totalAmount * igstPercent / 100
}
