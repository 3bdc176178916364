package wizard

import (
	"fmt"
	"net/url"

	formcodec "github.com/go-playground/form/v4"
)

type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "COD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodMomo         PaymentMethod = "MOMO"
	PaymentMethodVNPay        PaymentMethod = "VNPAY"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodBankTransfer, PaymentMethodMomo, PaymentMethodVNPay:
		return true
	}
	return false
}

// CustomMeasurement is the inline new-entry alternative to selecting a saved
// measurement. Chest, waist and shoulders are the required trio.
type CustomMeasurement struct {
	Chest        string `form:"chest"`
	Waist        string `form:"waist"`
	Shoulders    string `form:"shoulders"`
	Hips         string `form:"hips"`
	SleeveLength string `form:"sleeveLength"`
	Inseam       string `form:"inseam"`
	Neck         string `form:"neck"`
	Notes        string `form:"notes"`
}

func (m CustomMeasurement) IsEmpty() bool {
	return m == CustomMeasurement{}
}

// CheckoutForm is the aggregate mutable state of the whole wizard.
type CheckoutForm struct {
	MeasurementUID string            `form:"measurementUid"`
	Measurement    CustomMeasurement `form:"measurement"`

	AddressUID  string `form:"addressUid"`
	FullName    string `form:"fullName"`
	Phone       string `form:"phone"`
	Email       string `form:"email"`
	AddressLine string `form:"address"`
	City        string `form:"city"`
	District    string `form:"district"`
	Ward        string `form:"ward"`

	PaymentMethod PaymentMethod `form:"paymentMethod"`
	Notes         string        `form:"notes"`

	// Errors is keyed by field name and rendered inline, never as a toast
	Errors map[string]string `form:"-"`
}

func NewCheckoutForm() CheckoutForm {
	return CheckoutForm{
		Errors: map[string]string{},
	}
}

func NewFromValues(values url.Values) (CheckoutForm, error) {
	form := NewCheckoutForm()
	err := formcodec.NewDecoder().Decode(&form, values)
	if err != nil {
		return form, fmt.Errorf("error decoding form: %s", err)
	}

	return form, nil
}

func (f CheckoutForm) ToValues() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(f)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}

func (f CheckoutForm) fieldValue(field string) string {
	switch field {
	case FieldFullName:
		return f.FullName
	case FieldPhone:
		return f.Phone
	case FieldEmail:
		return f.Email
	case FieldAddress:
		return f.AddressLine
	case FieldCity:
		return f.City
	case FieldDistrict:
		return f.District
	case FieldWard:
		return f.Ward
	default:
		return ""
	}
}
