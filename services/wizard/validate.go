package wizard

import (
	"regexp"
	"strings"
)

const (
	FieldFullName = "fullName"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldAddress  = "address"
	FieldCity     = "city"
	FieldDistrict = "district"
	FieldWard     = "ward"
)

var shippingRequiredFields = []string{
	FieldFullName, FieldPhone, FieldEmail, FieldAddress, FieldCity,
}

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateField runs the fixed per-field rule and records or clears the
// field's entry in the Errors map. It is triggered on blur, independently of
// CanProceed.
func ValidateField(form *CheckoutForm, field string) {
	if form.Errors == nil {
		form.Errors = map[string]string{}
	}

	message := ""
	switch field {
	case FieldFullName:
		if strings.TrimSpace(form.FullName) == "" {
			message = "full name is required"
		}
	case FieldAddress:
		if strings.TrimSpace(form.AddressLine) == "" {
			message = "address is required"
		}
	case FieldCity:
		if strings.TrimSpace(form.City) == "" {
			message = "city is required"
		}
	case FieldPhone:
		stripped := strings.Join(strings.Fields(form.Phone), "")
		if !phonePattern.MatchString(stripped) {
			message = "phone must be 10 or 11 digits"
		}
	case FieldEmail:
		if !emailPattern.MatchString(form.Email) {
			message = "invalid email address"
		}
	default:
		// unknown fields carry no rule
		return
	}

	if message == "" {
		delete(form.Errors, field)
		return
	}
	form.Errors[field] = message
}
