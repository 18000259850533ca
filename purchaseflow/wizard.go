package purchaseflow

import (
	"context"
	"sync"

	"rice-app/apiclient"
	"rice-app/notify"
)

// Anchor seeds the wizard with at most one entity ID. When several are set
// the sauda wins, then the inward slip, then the purchase.
type Anchor struct {
	SaudaID      string
	InwardSlipID string
	PurchaseID   string
}

// Wizard drives the five step purchase flow. All step knowledge lives in the
// detector's FlowState, the wizard only mirrors it into a step number and
// holds the entities the preview cards render.
type Wizard struct {
	detector *Detector
	bus      *notify.Bus

	mu    sync.Mutex
	gen   int
	step  int
	state FlowState

	sauda      *apiclient.Sauda
	inwardSlip *apiclient.InwardSlipPass
	purchase   *apiclient.Purchase
	advice     *apiclient.PaymentAdvice
}

func NewWizard(client FlowClient, bus *notify.Bus) *Wizard {
	return &Wizard{
		detector: NewDetector(client),
		bus:      bus,
		step:     StepNumber(StepTransporter),
	}
}

// Open resolves the anchor chain, computes flow state and jumps to the
// earliest incomplete step. A concurrent Open or Reset invalidates the
// in-flight resolution, stale results are discarded.
func (w *Wizard) Open(ctx context.Context, anchor Anchor) error {
	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.mu.Unlock()

	var (
		sauda      *apiclient.Sauda
		inwardSlip *apiclient.InwardSlipPass
		purchase   *apiclient.Purchase
		err        error
	)

	client := w.detector.Client

	switch {
	case anchor.SaudaID != "":
		sauda, err = client.SaudaByID(ctx, anchor.SaudaID)
		if err != nil {
			return err
		}

	case anchor.InwardSlipID != "":
		inwardSlip, err = client.InwardSlipByID(ctx, anchor.InwardSlipID)
		if err != nil {
			return err
		}
		sauda, err = client.SaudaByID(ctx, inwardSlip.SaudaID)
		if err != nil {
			return err
		}

	case anchor.PurchaseID != "":
		purchase, err = client.PurchaseByID(ctx, anchor.PurchaseID)
		if err != nil {
			return err
		}
		sauda, err = client.SaudaByID(ctx, purchase.SaudaID)
		if err != nil {
			return err
		}

	default:
		// No anchor, start from the optional transporter step
		w.apply(gen, func() {
			w.step = StepNumber(StepTransporter)
			w.state = FlowState{CurrentStep: StepTransporter, NextStep: StepTransporter}
		})
		return nil
	}

	state := w.detector.FlowStateForSauda(ctx, sauda.ID)

	// Earlier step previews need the entities the probes discovered
	if state.HasInwardSlip && inwardSlip == nil {
		if slips, lerr := client.InwardSlipsBySauda(ctx, sauda.ID); lerr == nil && len(slips) > 0 {
			inwardSlip = &slips[0]
		}
	}
	if state.HasPurchase && purchase == nil {
		if purchases, lerr := client.PurchasesBySauda(ctx, sauda.ID); lerr == nil && len(purchases) > 0 {
			purchase = &purchases[0]
		}
	}
	var advice *apiclient.PaymentAdvice
	if state.HasPaymentAdvice && purchase != nil {
		if advices, lerr := client.PaymentAdvicesByPurchase(ctx, purchase.ID); lerr == nil && len(advices) > 0 {
			advice = &advices[0]
		}
	}

	applied := w.apply(gen, func() {
		w.sauda = sauda
		w.inwardSlip = inwardSlip
		w.purchase = purchase
		w.advice = advice
		w.state = state
		if state.NextStep == "" {
			w.step = StepNumber(StepPayment)
		} else {
			w.step = StepNumber(state.CurrentStep)
		}
	})

	if applied && state.Degraded && w.bus != nil {
		w.bus.Warning("Could not verify purchase flow progress, please retry")
	}
	return nil
}

// apply runs fn under the lock only when the generation still matches
func (w *Wizard) apply(gen int, fn func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		return false
	}
	fn()
	return true
}

// Step returns the current 1-based wizard step
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// State returns the last computed flow state
func (w *Wizard) State() FlowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Wizard) Sauda() *apiclient.Sauda                { w.mu.Lock(); defer w.mu.Unlock(); return w.sauda }
func (w *Wizard) InwardSlip() *apiclient.InwardSlipPass  { w.mu.Lock(); defer w.mu.Unlock(); return w.inwardSlip }
func (w *Wizard) Purchase() *apiclient.Purchase          { w.mu.Lock(); defer w.mu.Unlock(); return w.purchase }
func (w *Wizard) PaymentAdvice() *apiclient.PaymentAdvice {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.advice
}

// CanCreate reports whether the create form for a step may open. The wizard
// warns and refuses when the dependent entity already exists, the server
// enforces the real uniqueness constraint.
func (w *Wizard) CanCreate(step Step) bool {
	w.mu.Lock()
	state := w.state
	w.mu.Unlock()

	var exists bool
	var what string
	switch step {
	case StepInwardSlip:
		exists, what = state.HasInwardSlip, "inward slip"
	case StepPurchase:
		exists, what = state.HasPurchase, "purchase"
	case StepPayment:
		exists, what = state.HasPaymentAdvice, "payment advice"
	default:
		return true
	}

	if exists {
		if w.bus != nil {
			w.bus.Warning("Only one " + what + " is allowed per sauda")
		}
		return false
	}
	return true
}

// HandleSaudaCreated records the new sauda and advances past step 2
func (w *Wizard) HandleSaudaCreated(ctx context.Context, sauda *apiclient.Sauda) {
	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.mu.Unlock()

	state := w.detector.FlowStateForSauda(ctx, sauda.ID)

	w.apply(gen, func() {
		w.sauda = sauda
		w.state = state
		w.step = StepNumber(state.CurrentStep)
	})
	w.notifySuccess("Sauda created")
}

func (w *Wizard) HandleInwardSlipCreated(ctx context.Context, slip *apiclient.InwardSlipPass) {
	w.refreshAfterCreate(ctx, func() { w.inwardSlip = slip }, "Inward slip created")
}

func (w *Wizard) HandlePurchaseCreated(ctx context.Context, purchase *apiclient.Purchase) {
	w.refreshAfterCreate(ctx, func() { w.purchase = purchase }, "Purchase created")
}

func (w *Wizard) HandlePaymentAdviceCreated(ctx context.Context, advice *apiclient.PaymentAdvice) {
	w.refreshAfterCreate(ctx, func() { w.advice = advice }, "Payment advice created")
}

// refreshAfterCreate stores the new entity, re-runs detection and moves the
// step pointer to wherever the refreshed state says the user should be.
func (w *Wizard) refreshAfterCreate(ctx context.Context, store func(), message string) {
	w.mu.Lock()
	w.gen++
	gen := w.gen
	sauda := w.sauda
	w.mu.Unlock()

	if sauda == nil {
		w.apply(gen, store)
		return
	}

	state := w.detector.FlowStateForSauda(ctx, sauda.ID)

	w.apply(gen, func() {
		store()
		w.state = state
		if state.NextStep == "" {
			w.step = StepNumber(StepPayment)
		} else {
			w.step = StepNumber(state.CurrentStep)
		}
	})
	w.notifySuccess(message)
}

// AdvanceTransporter moves past the optional first step
func (w *Wizard) AdvanceTransporter() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepNumber(StepTransporter) {
		w.step = StepNumber(StepSauda)
	}
}

// Reset clears every cached entity and returns the wizard to step 1.
// The generation bump discards any in-flight probe results.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
	w.step = StepNumber(StepTransporter)
	w.state = FlowState{}
	w.sauda = nil
	w.inwardSlip = nil
	w.purchase = nil
	w.advice = nil
}

func (w *Wizard) notifySuccess(message string) {
	if w.bus != nil {
		w.bus.Success(message)
	}
}
