package models

import (
	"math"
	"testing"
)

func TestComputeNetPayable(t *testing.T) {
	cases := []struct {
		name    string
		amount  float64
		charges []PaymentCharge
		want    float64
	}{
		{
			name:   "no charges",
			amount: 10000,
			want:   10000,
		},
		{
			name:   "fixed charge",
			amount: 10000,
			charges: []PaymentCharge{
				{ChargeName: "Handling", ChargeType: ChargeTypeFixed, Value: 500},
			},
			want: 9500,
		},
		{
			name:   "percentage charge applies to gross",
			amount: 10000,
			charges: []PaymentCharge{
				{ChargeName: "Commission", ChargeType: ChargeTypePercentage, Value: 2},
			},
			want: 9800,
		},
		{
			name:   "mixed charges, percentage still on gross",
			amount: 10000,
			charges: []PaymentCharge{
				{ChargeName: "Handling", ChargeType: ChargeTypeFixed, Value: 500},
				{ChargeName: "Commission", ChargeType: ChargeTypePercentage, Value: 2},
				{ChargeName: "Discount", ChargeType: ChargeTypePercentage, Value: 1},
			},
			want: 10000 - 500 - 200 - 100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeNetPayable(tc.amount, tc.charges)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ComputeNetPayable = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsValidChargeType(t *testing.T) {
	if !IsValidChargeType("fixed") || !IsValidChargeType("percentage") {
		t.Error("fixed and percentage must be valid")
	}
	if IsValidChargeType("flat") {
		t.Error("flat must be invalid")
	}
}

func TestIsValidAdviceStatus(t *testing.T) {
	for _, s := range []string{"pending", "completed", "failed"} {
		if !IsValidAdviceStatus(s) {
			t.Errorf("%q must be valid", s)
		}
	}
	if IsValidAdviceStatus("paid") {
		t.Error("paid must be invalid")
	}
}
