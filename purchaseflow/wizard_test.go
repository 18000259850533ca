package purchaseflow

import (
	"context"
	"testing"

	"rice-app/apiclient"
	"rice-app/notify"
)

func TestWizardAnchorPriority(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSauda("S2")
	client.addSlip("S2", "IS2")
	client.addPurchase("S2", "P2")

	wizard := NewWizard(client, nil)

	// All three anchors supplied, the sauda path must win
	err := wizard.Open(context.Background(), Anchor{
		SaudaID:      "S1",
		InwardSlipID: "IS2",
		PurchaseID:   "P2",
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if sauda := wizard.Sauda(); sauda == nil || sauda.ID != "S1" {
		t.Fatalf("wizard resolved sauda %+v, want S1", sauda)
	}
	if wizard.Step() != StepNumber(StepInwardSlip) {
		t.Errorf("step = %d, want %d (inwardSlip)", wizard.Step(), StepNumber(StepInwardSlip))
	}
}

func TestWizardOpenSaudaWithNothing(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")

	wizard := NewWizard(client, nil)
	if err := wizard.Open(context.Background(), Anchor{SaudaID: "S1"}); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if wizard.Step() != 3 {
		t.Errorf("step = %d, want 3 for a sauda with no inward slip", wizard.Step())
	}
	state := wizard.State()
	if state.CurrentStep != StepInwardSlip || state.NextStep != StepInwardSlip {
		t.Errorf("state = %+v, want current/next inwardSlip", state)
	}
	if state.HasInwardSlip {
		t.Error("HasInwardSlip should be false")
	}
}

func TestWizardOpenPurchaseAnchorLandsOnPayment(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSlip("S1", "IS1")
	client.addPurchase("S1", "P1")

	wizard := NewWizard(client, nil)
	if err := wizard.Open(context.Background(), Anchor{PurchaseID: "P1"}); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if wizard.Step() != 5 {
		t.Errorf("step = %d, want 5 for a purchase with no payment advice", wizard.Step())
	}
	state := wizard.State()
	if state.NextStep != StepPayment {
		t.Errorf("NextStep = %q, want payment", state.NextStep)
	}
	if state.Complete() {
		t.Error("flow should not be complete yet")
	}

	// Ancestor chain was reconstructed for the preview cards
	if wizard.Sauda() == nil || wizard.Sauda().ID != "S1" {
		t.Error("sauda ancestor should be loaded")
	}
	if wizard.InwardSlip() == nil || wizard.InwardSlip().ID != "IS1" {
		t.Error("inward slip ancestor should be loaded")
	}
	if wizard.Purchase() == nil || wizard.Purchase().ID != "P1" {
		t.Error("purchase anchor should be loaded")
	}
}

func TestWizardOpenInwardSlipAnchor(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSlip("S1", "IS1")

	wizard := NewWizard(client, nil)
	if err := wizard.Open(context.Background(), Anchor{InwardSlipID: "IS1"}); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if wizard.Step() != StepNumber(StepPurchase) {
		t.Errorf("step = %d, want %d (purchase)", wizard.Step(), StepNumber(StepPurchase))
	}
	if wizard.Sauda() == nil || wizard.Sauda().ID != "S1" {
		t.Error("sauda ancestor should be loaded from the slip")
	}
}

func TestWizardNoAnchorStartsAtTransporter(t *testing.T) {
	wizard := NewWizard(newStubClient(), nil)
	if err := wizard.Open(context.Background(), Anchor{}); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if wizard.Step() != 1 {
		t.Errorf("step = %d, want 1", wizard.Step())
	}

	wizard.AdvanceTransporter()
	if wizard.Step() != 2 {
		t.Errorf("step after AdvanceTransporter = %d, want 2", wizard.Step())
	}
}

func TestWizardAdvancesAfterCreation(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	wizard := NewWizard(client, nil)
	ctx := context.Background()

	if err := wizard.Open(ctx, Anchor{SaudaID: "S1"}); err != nil {
		t.Fatalf("Open: %v", err)
	}

	client.addSlip("S1", "IS1")
	wizard.HandleInwardSlipCreated(ctx, &apiclient.InwardSlipPass{ID: "IS1", SaudaID: "S1"})
	if wizard.Step() != StepNumber(StepPurchase) {
		t.Errorf("step after slip = %d, want %d", wizard.Step(), StepNumber(StepPurchase))
	}

	client.addPurchase("S1", "P1")
	wizard.HandlePurchaseCreated(ctx, &apiclient.Purchase{ID: "P1", SaudaID: "S1"})
	if wizard.Step() != StepNumber(StepPayment) {
		t.Errorf("step after purchase = %d, want %d", wizard.Step(), StepNumber(StepPayment))
	}

	client.addAdvice("P1", "PA1")
	wizard.HandlePaymentAdviceCreated(ctx, &apiclient.PaymentAdvice{ID: "PA1", PurchaseID: "P1"})
	if !wizard.State().Complete() {
		t.Error("flow should be complete after the payment advice")
	}
	if wizard.Step() != 5 {
		t.Errorf("step = %d, want 5 on a complete flow", wizard.Step())
	}
}

func TestWizardCanCreateWarnsOnDuplicate(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSlip("S1", "IS1")

	bus := notify.NewBus()
	defer bus.Close()
	ch, cancel := bus.Subscribe()
	defer cancel()

	wizard := NewWizard(client, bus)
	if err := wizard.Open(context.Background(), Anchor{SaudaID: "S1"}); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if wizard.CanCreate(StepInwardSlip) {
		t.Error("CanCreate(inwardSlip) should refuse, a slip already exists")
	}
	select {
	case n := <-ch:
		if n.Level != notify.LevelWarning {
			t.Errorf("notification level = %q, want warning", n.Level)
		}
	default:
		t.Error("expected a warning notification")
	}

	if !wizard.CanCreate(StepPurchase) {
		t.Error("CanCreate(purchase) should allow, no purchase exists")
	}
}

func TestWizardResetClearsState(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSlip("S1", "IS1")

	wizard := NewWizard(client, nil)
	if err := wizard.Open(context.Background(), Anchor{SaudaID: "S1"}); err != nil {
		t.Fatalf("Open: %v", err)
	}

	wizard.Reset()

	if wizard.Step() != 1 {
		t.Errorf("step after reset = %d, want 1", wizard.Step())
	}
	if wizard.Sauda() != nil || wizard.InwardSlip() != nil || wizard.Purchase() != nil || wizard.PaymentAdvice() != nil {
		t.Error("cached entities should be cleared after reset")
	}
	if wizard.State().CurrentStep != "" {
		t.Errorf("flow state should be zeroed, got %+v", wizard.State())
	}
}

func TestWizardStaleOpenDiscarded(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSlip("S1", "IS1")

	wizard := NewWizard(client, nil)
	ctx := context.Background()

	if err := wizard.Open(ctx, Anchor{SaudaID: "S1"}); err != nil {
		t.Fatalf("Open: %v", err)
	}

	// A reset after the open bumps the generation, the next accessor reads
	// must reflect the reset, not the earlier open.
	wizard.Reset()
	if wizard.Step() != 1 || wizard.Sauda() != nil {
		t.Error("reset state should win over the earlier open")
	}
}
