// Package purchaseflow derives pipeline progress for the guided purchase
// flow. A sauda moves through inward slip, purchase and payment advice in a
// fixed order, the detector probes the API to find the earliest incomplete
// step and the wizard drives the user through the rest.
package purchaseflow

import "golang.org/x/exp/slices"

// Step is one of the five wizard steps
type Step string

const (
	StepTransporter Step = "transporter"
	StepSauda       Step = "sauda"
	StepInwardSlip  Step = "inwardSlip"
	StepPurchase    Step = "purchase"
	StepPayment     Step = "payment"
)

// stepOrder fixes the wizard step sequence, index+1 is the step number
var stepOrder = []Step{
	StepTransporter,
	StepSauda,
	StepInwardSlip,
	StepPurchase,
	StepPayment,
}

// StepNumber maps a step to its 1-based wizard position, 0 for unknown steps
func StepNumber(s Step) int {
	idx := slices.Index(stepOrder, s)
	if idx < 0 {
		return 0
	}
	return idx + 1
}

// StepFromNumber maps a 1-based wizard position back to a step
func StepFromNumber(n int) (Step, bool) {
	if n < 1 || n > len(stepOrder) {
		return "", false
	}
	return stepOrder[n-1], true
}

// NextStepAfter returns the step following s, empty when s is last or unknown
func NextStepAfter(s Step) Step {
	idx := slices.Index(stepOrder, s)
	if idx < 0 || idx+1 >= len(stepOrder) {
		return ""
	}
	return stepOrder[idx+1]
}

// IsValidStep reports whether s is one of the five wizard steps
func IsValidStep(s Step) bool {
	return slices.Contains(stepOrder, s)
}
