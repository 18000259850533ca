package purchaseflow

import (
	"context"
	"log"

	"rice-app/apiclient"
)

// FlowClient is the slice of the API client the detector and wizard need
type FlowClient interface {
	SaudaByID(ctx context.Context, id string) (*apiclient.Sauda, error)
	InwardSlipByID(ctx context.Context, id string) (*apiclient.InwardSlipPass, error)
	PurchaseByID(ctx context.Context, id string) (*apiclient.Purchase, error)
	InwardSlipsBySauda(ctx context.Context, saudaID string) ([]apiclient.InwardSlipPass, error)
	PurchasesBySauda(ctx context.Context, saudaID string) ([]apiclient.Purchase, error)
	PaymentAdvicesByPurchase(ctx context.Context, purchaseID string) ([]apiclient.PaymentAdvice, error)
}

// FlowState describes how far a sauda's pipeline has progressed.
// NextStep is empty once a payment advice exists, the flow is then complete.
// Degraded marks a state computed from a partial probe run, callers should
// offer a retry instead of treating missing entities as truth.
type FlowState struct {
	CurrentStep      Step
	CompletedSteps   []Step
	NextStep         Step
	HasInwardSlip    bool
	HasPurchase      bool
	HasPaymentAdvice bool
	Degraded         bool
	ProbeErr         error
}

// Complete reports whether the whole pipeline is done
func (s FlowState) Complete() bool {
	return s.NextStep == "" && !s.Degraded
}

type Detector struct {
	Client FlowClient
}

func NewDetector(client FlowClient) *Detector {
	return &Detector{Client: client}
}

// FlowStateForSauda probes the pipeline for a sauda assumed to exist.
// Probes run strictly in order because the payment advice probe needs the
// purchase ID found by the previous one. It never returns an error, a failed
// probe stops the walk and the partial state comes back with Degraded set.
func (d *Detector) FlowStateForSauda(ctx context.Context, saudaID string) FlowState {
	state := FlowState{
		CurrentStep:    StepInwardSlip,
		CompletedSteps: []Step{StepSauda},
		NextStep:       StepInwardSlip,
	}

	slips, err := d.Client.InwardSlipsBySauda(ctx, saudaID)
	if err != nil {
		return d.degrade(state, err)
	}
	if len(slips) == 0 {
		return state
	}

	// List endpoints order newest first, element zero is authoritative
	state.HasInwardSlip = true
	state.CompletedSteps = append(state.CompletedSteps, StepInwardSlip)
	state.CurrentStep = StepPurchase
	state.NextStep = StepPurchase

	purchases, err := d.Client.PurchasesBySauda(ctx, saudaID)
	if err != nil {
		return d.degrade(state, err)
	}
	if len(purchases) == 0 {
		return state
	}

	state.HasPurchase = true
	state.CompletedSteps = append(state.CompletedSteps, StepPurchase)
	state.CurrentStep = StepPayment
	state.NextStep = StepPayment

	advices, err := d.Client.PaymentAdvicesByPurchase(ctx, purchases[0].ID)
	if err != nil {
		return d.degrade(state, err)
	}
	if len(advices) == 0 {
		return state
	}

	state.HasPaymentAdvice = true
	state.CompletedSteps = append(state.CompletedSteps, StepPayment)
	state.NextStep = ""
	return state
}

func (d *Detector) degrade(state FlowState, err error) FlowState {
	log.Println("purchaseflow: probe failed:", err)
	state.Degraded = true
	state.ProbeErr = err
	return state
}

// NextStepForInwardSlip walks forward from a known inward slip and returns
// the next incomplete step, empty when the flow is complete.
func (d *Detector) NextStepForInwardSlip(ctx context.Context, slipID string) (Step, error) {
	slip, err := d.Client.InwardSlipByID(ctx, slipID)
	if err != nil {
		return "", err
	}

	state := d.FlowStateForSauda(ctx, slip.SaudaID)
	if state.Degraded {
		return "", state.ProbeErr
	}
	return state.NextStep, nil
}

// NextStepForPurchase reports whether a payment advice still needs to be
// created for a known purchase.
func (d *Detector) NextStepForPurchase(ctx context.Context, purchaseID string) (Step, error) {
	advices, err := d.Client.PaymentAdvicesByPurchase(ctx, purchaseID)
	if err != nil {
		return "", err
	}
	if len(advices) == 0 {
		return StepPayment, nil
	}
	return "", nil
}

// EntityExists probes whether any entity of the given step exists under the
// parent ID. Saudas take an inward slip parent check through the slip list.
func (d *Detector) EntityExists(ctx context.Context, step Step, parentID string) (bool, error) {
	switch step {
	case StepInwardSlip:
		slips, err := d.Client.InwardSlipsBySauda(ctx, parentID)
		if err != nil {
			return false, err
		}
		return len(slips) > 0, nil
	case StepPurchase:
		purchases, err := d.Client.PurchasesBySauda(ctx, parentID)
		if err != nil {
			return false, err
		}
		return len(purchases) > 0, nil
	case StepPayment:
		advices, err := d.Client.PaymentAdvicesByPurchase(ctx, parentID)
		if err != nil {
			return false, err
		}
		return len(advices) > 0, nil
	}
	return false, nil
}
