package models

import "testing"

func TestCanTransitionSaudaStatus(t *testing.T) {
	allowed := []struct{ from, to string }{
		{SaudaStatusDraft, SaudaStatusActive},
		{SaudaStatusDraft, SaudaStatusCancelled},
		{SaudaStatusActive, SaudaStatusCompleted},
		{SaudaStatusActive, SaudaStatusCancelled},
	}
	for _, tr := range allowed {
		if !CanTransitionSaudaStatus(tr.from, tr.to) {
			t.Errorf("%s -> %s should be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to string }{
		{SaudaStatusDraft, SaudaStatusCompleted},
		{SaudaStatusCompleted, SaudaStatusActive},
		{SaudaStatusCancelled, SaudaStatusDraft},
		{SaudaStatusActive, SaudaStatusDraft},
		{"unknown", SaudaStatusActive},
	}
	for _, tr := range denied {
		if CanTransitionSaudaStatus(tr.from, tr.to) {
			t.Errorf("%s -> %s should be denied", tr.from, tr.to)
		}
	}
}

func TestIsValidSaudaType(t *testing.T) {
	if !IsValidSaudaType(SaudaTypeExGodown) || !IsValidSaudaType(SaudaTypeFOR) {
		t.Error("xgodown and for must be valid")
	}
	if IsValidSaudaType("delivered") {
		t.Error("delivered must be invalid")
	}
}
