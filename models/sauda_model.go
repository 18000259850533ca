package models

import (
	"rice-app/controllers/idgen"
	"rice-app/types"

	"gorm.io/gorm"
)

// Sauda is the purchase agreement that roots a pipeline instance.
type Sauda struct {
	gorm.Model
	ID               types.SnowflakeID `json:"id" gorm:"primary_key"`
	SaudaNo          string            `json:"sauda_no" gorm:"unique"`
	Type             string            `json:"type"` // xgodown | for
	RiceQuality      string            `json:"rice_quality"`
	Rate             float64           `json:"rate"`
	QuantityQuintals float64           `json:"quantity_quintals"`
	Purchaser        string            `json:"purchaser"`
	VendorID         *uint             `json:"vendor_id"`
	BrokerID         *uint             `json:"broker_id"`
	TransporterID    *uint             `json:"transporter_id"`
	Commission       float64           `json:"commission"`
	TransportCost    float64           `json:"transportation_cost"`
	CashDiscount     float64           `json:"cash_discount"`
	SaudaDate        string            `gorm:"type:date" json:"sauda_date"`
	Status           string            `json:"status" gorm:"default:'draft'"`
	Remarks          string            `json:"remarks"`
	CreatedBy        int
	UpdatedBy        int
	DeletedBy        int
}

func (s *Sauda) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == 0 {
		s.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}

const (
	SaudaTypeExGodown = "xgodown"
	SaudaTypeFOR      = "for"

	SaudaStatusDraft     = "draft"
	SaudaStatusActive    = "active"
	SaudaStatusCompleted = "completed"
	SaudaStatusCancelled = "cancelled"
)

var saudaTransitions = map[string][]string{
	SaudaStatusDraft:     {SaudaStatusActive, SaudaStatusCancelled},
	SaudaStatusActive:    {SaudaStatusCompleted, SaudaStatusCancelled},
	SaudaStatusCompleted: {},
	SaudaStatusCancelled: {},
}

// CanTransitionSaudaStatus checks if a sauda status transition is allowed
func CanTransitionSaudaStatus(from, to string) bool {
	allowed, exists := saudaTransitions[from]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func IsValidSaudaType(t string) bool {
	return t == SaudaTypeExGodown || t == SaudaTypeFOR
}
