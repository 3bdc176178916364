package wizard

// Step is the closed set of wizard states. The first five form the ordinal
// sequence; StepComplete is terminal, outside the sequence and has no back.
type Step string

const (
	StepCart        Step = "cart"
	StepMeasurement Step = "measurement"
	StepShipping    Step = "shipping"
	StepPayment     Step = "payment"
	StepConfirm     Step = "confirm"
	StepComplete    Step = "complete"
)

var stepSequence = []Step{StepCart, StepMeasurement, StepShipping, StepPayment, StepConfirm}

func (s Step) IsTerminal() bool {
	return s == StepComplete
}

func (s Step) String() string {
	return string(s)
}

func ordinal(s Step) int {
	for i, step := range stepSequence {
		if step == s {
			return i
		}
	}
	return -1
}

// Next moves exactly one step forward and is a no-op at the boundaries.
// StepComplete is never reached this way: only a successful submission
// enters it.
func Next(s Step) Step {
	i := ordinal(s)
	if i < 0 || i == len(stepSequence)-1 {
		return s
	}
	return stepSequence[i+1]
}

// Back moves exactly one step backward and is a no-op at the boundaries.
func Back(s Step) Step {
	i := ordinal(s)
	if i <= 0 {
		return s
	}
	return stepSequence[i-1]
}

// CanProceed tells whether the forward transition out of the given step is
// allowed for the current form state. It is a pure predicate: field-level
// validation runs separately on blur via ValidateField.
func CanProceed(s Step, form CheckoutForm, cartSize int) bool {
	switch s {
	case StepCart:
		return cartSize > 0

	case StepMeasurement:
		if form.MeasurementUID != "" {
			return true
		}
		return form.Measurement.Chest != "" &&
			form.Measurement.Waist != "" &&
			form.Measurement.Shoulders != ""

	case StepShipping:
		// A saved address needs no further field validation
		if form.AddressUID != "" {
			return true
		}
		for _, field := range shippingRequiredFields {
			if form.fieldValue(field) == "" {
				return false
			}
			if _, hasError := form.Errors[field]; hasError {
				return false
			}
		}
		return true

	case StepPayment:
		return form.PaymentMethod != ""

	case StepConfirm:
		// No further gating: submission itself may still fail
		return true

	case StepComplete:
		return false

	default:
		return false
	}
}
