package models

import (
	"rice-app/controllers/idgen"
	"rice-app/types"

	"gorm.io/gorm"
)

// PaymentAdvice records an outgoing payment against a purchase. NetPayable is
// computed server side from the charge list, clients never send it.
type PaymentAdvice struct {
	gorm.Model
	ID             types.SnowflakeID `json:"id" gorm:"primary_key"`
	AdviceNo       string            `json:"advice_no" gorm:"unique"`
	PurchaseID     types.SnowflakeID `json:"purchase_id" gorm:"uniqueIndex"`
	Amount         float64           `json:"amount"`
	NetPayable     float64           `json:"net_payable"`
	Status         string            `json:"status" gorm:"default:'pending'"`
	PaymentSlipURL string            `json:"payment_slip_url"`
	AdviceDate     string            `gorm:"type:date" json:"advice_date"`
	Remarks        string            `json:"remarks"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int

	// Relations
	Charges []PaymentCharge `gorm:"foreignKey:AdviceID;references:ID;constraint:OnDelete:CASCADE" json:"charges"`
}

func (a *PaymentAdvice) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == 0 {
		a.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}

type PaymentCharge struct {
	gorm.Model
	AdviceID   types.SnowflakeID `json:"advice_id" gorm:"index"`
	ChargeName string            `json:"charge_name"`
	ChargeType string            `json:"charge_type"` // fixed | percentage
	Value      float64           `json:"value"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}

const (
	ChargeTypeFixed      = "fixed"
	ChargeTypePercentage = "percentage"

	AdviceStatusPending   = "pending"
	AdviceStatusCompleted = "completed"
	AdviceStatusFailed    = "failed"
)

func IsValidChargeType(t string) bool {
	return t == ChargeTypeFixed || t == ChargeTypePercentage
}

func IsValidAdviceStatus(s string) bool {
	return s == AdviceStatusPending || s == AdviceStatusCompleted || s == AdviceStatusFailed
}

// ComputeNetPayable deducts every charge from the gross amount. Percentage
// charges apply to the gross amount, not the running balance.
func ComputeNetPayable(amount float64, charges []PaymentCharge) float64 {
	net := amount
	for _, c := range charges {
		switch c.ChargeType {
		case ChargeTypeFixed:
			net -= c.Value
		case ChargeTypePercentage:
			net -= amount * c.Value / 100
		}
	}
	return net
}
