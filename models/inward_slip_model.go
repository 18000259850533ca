package models

import (
	"rice-app/controllers/idgen"
	"rice-app/types"

	"gorm.io/gorm"
)

// InwardSlipPass is the goods receipt raised against a sauda. One slip per
// sauda, the unique index is what makes list-by-sauda deterministic.
type InwardSlipPass struct {
	gorm.Model
	ID        types.SnowflakeID `json:"id" gorm:"primary_key"`
	SlipNo    string            `json:"slip_no" gorm:"unique"`
	SaudaID   types.SnowflakeID `json:"sauda_id" gorm:"uniqueIndex"`
	VehicleNo string            `json:"vehicle_no"`
	PartyName string            `json:"party_name"`
	SlipDate  string            `gorm:"type:date" json:"slip_date"`
	Remarks   string            `json:"remarks"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int

	// Relations
	Lots []InwardSlipLot `gorm:"foreignKey:SlipID;references:ID;constraint:OnDelete:CASCADE" json:"lots"`
}

func (p *InwardSlipPass) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == 0 {
		p.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}

type InwardSlipLot struct {
	gorm.Model
	SlipID         types.SnowflakeID `json:"slip_id" gorm:"index"`
	LotNo          string            `json:"lot_no"`
	Item           string            `json:"item"`
	Bags           int               `json:"bags"`
	BillWeight     float64           `json:"bill_weight"`
	ReceivedWeight float64           `json:"received_weight"`
	Rate           float64           `json:"rate"`
	Amount         float64           `json:"amount"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}

// LotAmount is the amount figure carried forward into the purchase,
// received weight wins over bill weight.
func LotAmount(receivedWeight, rate float64) float64 {
	return receivedWeight * rate
}

// SlipTotals sums received weight and amount across lots.
func SlipTotals(lots []InwardSlipLot) (weight float64, amount float64) {
	for _, l := range lots {
		weight += l.ReceivedWeight
		amount += l.Amount
	}
	return
}
