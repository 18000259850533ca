package purchaseflow

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"rice-app/apiclient"
)

// stubClient is a scriptable FlowClient for detector and wizard tests
type stubClient struct {
	saudas   map[string]*apiclient.Sauda
	slips    map[string][]apiclient.InwardSlipPass
	purchase map[string][]apiclient.Purchase
	advices  map[string][]apiclient.PaymentAdvice

	slipErr     error
	purchaseErr error
	adviceErr   error
}

func newStubClient() *stubClient {
	return &stubClient{
		saudas:   map[string]*apiclient.Sauda{},
		slips:    map[string][]apiclient.InwardSlipPass{},
		purchase: map[string][]apiclient.Purchase{},
		advices:  map[string][]apiclient.PaymentAdvice{},
	}
}

func (s *stubClient) SaudaByID(_ context.Context, id string) (*apiclient.Sauda, error) {
	if sauda, ok := s.saudas[id]; ok {
		return sauda, nil
	}
	return nil, errors.New("sauda not found")
}

func (s *stubClient) InwardSlipByID(_ context.Context, id string) (*apiclient.InwardSlipPass, error) {
	for _, list := range s.slips {
		for i := range list {
			if list[i].ID == id {
				return &list[i], nil
			}
		}
	}
	return nil, errors.New("slip not found")
}

func (s *stubClient) PurchaseByID(_ context.Context, id string) (*apiclient.Purchase, error) {
	for _, list := range s.purchase {
		for i := range list {
			if list[i].ID == id {
				return &list[i], nil
			}
		}
	}
	return nil, errors.New("purchase not found")
}

func (s *stubClient) InwardSlipsBySauda(_ context.Context, saudaID string) ([]apiclient.InwardSlipPass, error) {
	if s.slipErr != nil {
		return nil, s.slipErr
	}
	return s.slips[saudaID], nil
}

func (s *stubClient) PurchasesBySauda(_ context.Context, saudaID string) ([]apiclient.Purchase, error) {
	if s.purchaseErr != nil {
		return nil, s.purchaseErr
	}
	return s.purchase[saudaID], nil
}

func (s *stubClient) PaymentAdvicesByPurchase(_ context.Context, purchaseID string) ([]apiclient.PaymentAdvice, error) {
	if s.adviceErr != nil {
		return nil, s.adviceErr
	}
	return s.advices[purchaseID], nil
}

func (s *stubClient) addSauda(id string) {
	s.saudas[id] = &apiclient.Sauda{ID: id, SaudaNo: "SA-" + id, Status: "active"}
}

func (s *stubClient) addSlip(saudaID, slipID string) {
	s.slips[saudaID] = append(s.slips[saudaID], apiclient.InwardSlipPass{ID: slipID, SaudaID: saudaID})
}

func (s *stubClient) addPurchase(saudaID, purchaseID string) {
	s.purchase[saudaID] = append(s.purchase[saudaID], apiclient.Purchase{ID: purchaseID, SaudaID: saudaID})
}

func (s *stubClient) addAdvice(purchaseID, adviceID string) {
	s.advices[purchaseID] = append(s.advices[purchaseID], apiclient.PaymentAdvice{ID: adviceID, PurchaseID: purchaseID})
}

func TestFlowStateForSaudaNothingExists(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")

	state := NewDetector(client).FlowStateForSauda(context.Background(), "S1")

	if state.CurrentStep != StepInwardSlip {
		t.Errorf("CurrentStep = %q, want inwardSlip", state.CurrentStep)
	}
	if !reflect.DeepEqual(state.CompletedSteps, []Step{StepSauda}) {
		t.Errorf("CompletedSteps = %v, want [sauda]", state.CompletedSteps)
	}
	if state.HasInwardSlip || state.HasPurchase || state.HasPaymentAdvice {
		t.Error("no has flags should be set")
	}
	if state.Degraded {
		t.Error("state should not be degraded")
	}
}

func TestFlowStateForSaudaChainedCompletion(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	detector := NewDetector(client)
	ctx := context.Background()

	client.addSlip("S1", "IS1")
	state := detector.FlowStateForSauda(ctx, "S1")
	if !state.HasInwardSlip || state.CurrentStep != StepPurchase {
		t.Errorf("after slip: HasInwardSlip=%v CurrentStep=%q, want true/purchase", state.HasInwardSlip, state.CurrentStep)
	}

	client.addPurchase("S1", "P1")
	state = detector.FlowStateForSauda(ctx, "S1")
	if !state.HasPurchase || state.CurrentStep != StepPayment {
		t.Errorf("after purchase: HasPurchase=%v CurrentStep=%q, want true/payment", state.HasPurchase, state.CurrentStep)
	}

	client.addAdvice("P1", "PA1")
	state = detector.FlowStateForSauda(ctx, "S1")
	if !state.HasPaymentAdvice {
		t.Error("after advice: HasPaymentAdvice should be true")
	}
	if state.NextStep != "" {
		t.Errorf("NextStep = %q, want empty for a complete flow", state.NextStep)
	}
	want := []Step{StepSauda, StepInwardSlip, StepPurchase, StepPayment}
	if !reflect.DeepEqual(state.CompletedSteps, want) {
		t.Errorf("CompletedSteps = %v, want %v", state.CompletedSteps, want)
	}
	if !state.Complete() {
		t.Error("Complete() should be true")
	}
}

func TestFlowStateForSaudaIdempotent(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSlip("S1", "IS1")
	detector := NewDetector(client)
	ctx := context.Background()

	first := detector.FlowStateForSauda(ctx, "S1")
	second := detector.FlowStateForSauda(ctx, "S1")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated detection differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestFlowStateForSaudaDegradesOnProbeFailure(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.slipErr = errors.New("connection refused")

	state := NewDetector(client).FlowStateForSauda(context.Background(), "S1")

	if state.CurrentStep != StepInwardSlip {
		t.Errorf("CurrentStep = %q, want inwardSlip default", state.CurrentStep)
	}
	if state.HasInwardSlip || state.HasPurchase || state.HasPaymentAdvice {
		t.Error("no has flags should be set after a failed probe")
	}
	if !state.Degraded {
		t.Error("Degraded should be true so callers can offer a retry")
	}
	if state.ProbeErr == nil {
		t.Error("ProbeErr should carry the probe failure")
	}
	if state.Complete() {
		t.Error("a degraded state is never complete")
	}
}

func TestFlowStateForSaudaPartialOnLateFailure(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSlip("S1", "IS1")
	client.purchaseErr = errors.New("timeout")

	state := NewDetector(client).FlowStateForSauda(context.Background(), "S1")

	if !state.HasInwardSlip {
		t.Error("HasInwardSlip should survive a later probe failure")
	}
	if state.CurrentStep != StepPurchase {
		t.Errorf("CurrentStep = %q, want purchase", state.CurrentStep)
	}
	if !state.Degraded {
		t.Error("Degraded should be true")
	}
}

func TestNextStepForInwardSlip(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSlip("S1", "IS1")
	detector := NewDetector(client)
	ctx := context.Background()

	next, err := detector.NextStepForInwardSlip(ctx, "IS1")
	if err != nil {
		t.Fatalf("NextStepForInwardSlip: %v", err)
	}
	if next != StepPurchase {
		t.Errorf("next = %q, want purchase", next)
	}
}

func TestNextStepForPurchase(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSlip("S1", "IS1")
	client.addPurchase("S1", "P1")
	detector := NewDetector(client)
	ctx := context.Background()

	next, err := detector.NextStepForPurchase(ctx, "P1")
	if err != nil {
		t.Fatalf("NextStepForPurchase: %v", err)
	}
	if next != StepPayment {
		t.Errorf("next = %q, want payment", next)
	}

	client.addAdvice("P1", "PA1")
	next, err = detector.NextStepForPurchase(ctx, "P1")
	if err != nil {
		t.Fatalf("NextStepForPurchase after advice: %v", err)
	}
	if next != "" {
		t.Errorf("next = %q, want empty once the advice exists", next)
	}
}

func TestEntityExists(t *testing.T) {
	client := newStubClient()
	client.addSauda("S1")
	client.addSlip("S1", "IS1")
	detector := NewDetector(client)
	ctx := context.Background()

	exists, err := detector.EntityExists(ctx, StepInwardSlip, "S1")
	if err != nil || !exists {
		t.Errorf("EntityExists(inwardSlip, S1) = %v, %v, want true, nil", exists, err)
	}

	exists, err = detector.EntityExists(ctx, StepPurchase, "S1")
	if err != nil || exists {
		t.Errorf("EntityExists(purchase, S1) = %v, %v, want false, nil", exists, err)
	}
}
