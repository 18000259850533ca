package purchaseflow

import "testing"

func TestStepNumberRoundTrip(t *testing.T) {
	steps := []Step{StepTransporter, StepSauda, StepInwardSlip, StepPurchase, StepPayment}
	for _, s := range steps {
		n := StepNumber(s)
		if n < 1 || n > 5 {
			t.Fatalf("StepNumber(%q) = %d, want 1..5", s, n)
		}
		back, ok := StepFromNumber(n)
		if !ok || back != s {
			t.Errorf("StepFromNumber(StepNumber(%q)) = %q, want %q", s, back, s)
		}
	}
}

func TestStepNumberPositions(t *testing.T) {
	cases := map[Step]int{
		StepTransporter: 1,
		StepSauda:       2,
		StepInwardSlip:  3,
		StepPurchase:    4,
		StepPayment:     5,
	}
	for step, want := range cases {
		if got := StepNumber(step); got != want {
			t.Errorf("StepNumber(%q) = %d, want %d", step, got, want)
		}
	}
	if got := StepNumber("bogus"); got != 0 {
		t.Errorf("StepNumber(bogus) = %d, want 0", got)
	}
}

func TestStepFromNumberOutOfRange(t *testing.T) {
	for _, n := range []int{0, 6, -1} {
		if _, ok := StepFromNumber(n); ok {
			t.Errorf("StepFromNumber(%d) ok, want not ok", n)
		}
	}
}

func TestNextStepAfter(t *testing.T) {
	if got := NextStepAfter(StepInwardSlip); got != StepPurchase {
		t.Errorf("NextStepAfter(inwardSlip) = %q, want purchase", got)
	}
	if got := NextStepAfter(StepPayment); got != "" {
		t.Errorf("NextStepAfter(payment) = %q, want empty", got)
	}
	if got := NextStepAfter("bogus"); got != "" {
		t.Errorf("NextStepAfter(bogus) = %q, want empty", got)
	}
}
