package models

import "testing"

func TestLotAmount(t *testing.T) {
	if got := LotAmount(25.5, 2000); got != 51000 {
		t.Errorf("LotAmount(25.5, 2000) = %v, want 51000", got)
	}
	if got := LotAmount(0, 2000); got != 0 {
		t.Errorf("LotAmount(0, 2000) = %v, want 0", got)
	}
}

func TestSlipTotals(t *testing.T) {
	lots := []InwardSlipLot{
		{ReceivedWeight: 10, Amount: 25000},
		{ReceivedWeight: 12.5, Amount: 31250},
	}
	weight, amount := SlipTotals(lots)
	if weight != 22.5 {
		t.Errorf("weight = %v, want 22.5", weight)
	}
	if amount != 56250 {
		t.Errorf("amount = %v, want 56250", amount)
	}

	weight, amount = SlipTotals(nil)
	if weight != 0 || amount != 0 {
		t.Errorf("empty totals = %v, %v, want 0, 0", weight, amount)
	}
}

func TestPurchaseIgst(t *testing.T) {
	if got := PurchaseIgst(100000, 5); got != 5000 {
		t.Errorf("PurchaseIgst(100000, 5) = %v, want 5000", got)
	}
	if got := PurchaseIgst(100000, 0); got != 0 {
		t.Errorf("PurchaseIgst(100000, 0) = %v, want 0", got)
	}
}
