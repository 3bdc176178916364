package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepTransitions(t *testing.T) {
	t.Run("Next walks the ordinal sequence", func(t *testing.T) {
		assert.Equal(t, StepMeasurement, Next(StepCart))
		assert.Equal(t, StepShipping, Next(StepMeasurement))
		assert.Equal(t, StepPayment, Next(StepShipping))
		assert.Equal(t, StepConfirm, Next(StepPayment))
	})

	t.Run("Next is a no-op at confirm", func(t *testing.T) {
		assert.Equal(t, StepConfirm, Next(StepConfirm))
	})

	t.Run("Complete is not reachable via Next", func(t *testing.T) {
		for _, s := range stepSequence {
			assert.NotEqual(t, StepComplete, Next(s))
		}
	})

	t.Run("Back walks the sequence in reverse", func(t *testing.T) {
		assert.Equal(t, StepPayment, Back(StepConfirm))
		assert.Equal(t, StepShipping, Back(StepPayment))
		assert.Equal(t, StepMeasurement, Back(StepShipping))
		assert.Equal(t, StepCart, Back(StepMeasurement))
	})

	t.Run("Back is a no-op at cart", func(t *testing.T) {
		assert.Equal(t, StepCart, Back(StepCart))
	})

	t.Run("Complete has no back", func(t *testing.T) {
		assert.Equal(t, StepComplete, Back(StepComplete))
	})
}

func TestCanProceed(t *testing.T) {
	t.Run("Cart requires a non-empty cart", func(t *testing.T) {
		assert.False(t, CanProceed(StepCart, NewCheckoutForm(), 0))
		assert.True(t, CanProceed(StepCart, NewCheckoutForm(), 1))
	})

	t.Run("Measurement accepts a saved measurement", func(t *testing.T) {
		form := NewCheckoutForm()
		form.MeasurementUID = "measurement_123"
		assert.True(t, CanProceed(StepMeasurement, form, 1))
	})

	t.Run("Measurement requires the custom trio otherwise", func(t *testing.T) {
		form := NewCheckoutForm()
		form.Measurement.Chest = "98"
		form.Measurement.Waist = "84"
		assert.False(t, CanProceed(StepMeasurement, form, 1))

		form.Measurement.Shoulders = "46"
		assert.True(t, CanProceed(StepMeasurement, form, 1))
	})

	t.Run("Shipping accepts a saved address regardless of the other fields", func(t *testing.T) {
		form := NewCheckoutForm()
		form.AddressUID = "address_123"
		assert.True(t, CanProceed(StepShipping, form, 1))
	})

	t.Run("Shipping without saved address requires all five fields", func(t *testing.T) {
		form := validShippingForm()

		assert.True(t, CanProceed(StepShipping, form, 1))

		for _, field := range shippingRequiredFields {
			broken := validShippingForm()
			switch field {
			case FieldFullName:
				broken.FullName = ""
			case FieldPhone:
				broken.Phone = ""
			case FieldEmail:
				broken.Email = ""
			case FieldAddress:
				broken.AddressLine = ""
			case FieldCity:
				broken.City = ""
			}
			assert.False(t, CanProceed(StepShipping, broken, 1), field)
		}
	})

	t.Run("Shipping blocks on a recorded field error", func(t *testing.T) {
		form := validShippingForm()
		form.Errors[FieldPhone] = "phone must be 10 or 11 digits"
		assert.False(t, CanProceed(StepShipping, form, 1))
	})

	t.Run("Payment requires a chosen method", func(t *testing.T) {
		form := NewCheckoutForm()
		assert.False(t, CanProceed(StepPayment, form, 1))

		form.PaymentMethod = PaymentMethodCOD
		assert.True(t, CanProceed(StepPayment, form, 1))
	})

	t.Run("Confirm never gates", func(t *testing.T) {
		assert.True(t, CanProceed(StepConfirm, NewCheckoutForm(), 0))
	})
}

func validShippingForm() CheckoutForm {
	form := NewCheckoutForm()
	form.FullName = "Nguyen Van An"
	form.Phone = "0912345678"
	form.Email = "an.nguyen@example.com"
	form.AddressLine = "12 Hang Gai"
	form.City = "Ha Noi"
	return form
}
