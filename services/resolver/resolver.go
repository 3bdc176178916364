package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcGrol/tailorshop/lib/myerrors"
	"github.com/MarcGrol/tailorshop/lib/mylog"
	"github.com/MarcGrol/tailorshop/services/shopapi"
	"github.com/MarcGrol/tailorshop/services/wizard"
)

type Config struct {
	DefaultCountry string
}

type Resolver struct {
	config       Config
	measurements shopapi.MeasurementClient
	addresses    shopapi.AddressClient
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewResolver(config Config, measurements shopapi.MeasurementClient, addresses shopapi.AddressClient) *Resolver {
	if config.DefaultCountry == "" {
		config.DefaultCountry = "VN"
	}
	return &Resolver{
		config:       config,
		measurements: measurements,
		addresses:    addresses,
		logger:       mylog.New("resolver"),
	}
}

// ResolveMeasurement turns the form's measurement choice into a measurement
// uid. A saved selection passes through untouched. Inline entries are created
// on the fly. An order can be placed without a measurement (the tailor follows
// up), so failure to create one only costs the shopper their entered values:
// log and continue with an empty uid.
func (r *Resolver) ResolveMeasurement(c context.Context, form wizard.CheckoutForm) string {
	if form.MeasurementUID != "" {
		return form.MeasurementUID
	}
	if form.Measurement.IsEmpty() {
		return ""
	}

	measurement, err := r.measurements.CreateMeasurement(c, measurementName(form), shopapi.MeasurementDetails{
		Chest:        form.Measurement.Chest,
		Waist:        form.Measurement.Waist,
		Shoulders:    form.Measurement.Shoulders,
		Hips:         form.Measurement.Hips,
		SleeveLength: form.Measurement.SleeveLength,
		Inseam:       form.Measurement.Inseam,
		Neck:         form.Measurement.Neck,
		Notes:        form.Measurement.Notes,
	})
	if err != nil {
		r.logger.Log(c, "", mylog.SeverityWarn, "Error creating measurement, continuing without: %s", err)
		return ""
	}

	return measurement.UID
}

// ResolveAddress turns the form's address choice into an address uid. A saved
// selection passes through untouched. Without an address the order cannot be
// delivered, so a creation failure is fatal to the submission.
func (r *Resolver) ResolveAddress(c context.Context, form wizard.CheckoutForm) (string, error) {
	if form.AddressUID != "" {
		return form.AddressUID, nil
	}

	address, err := r.addresses.CreateAddress(c, composeStreet(form), form.City, r.config.DefaultCountry, false)
	if err != nil {
		return "", myerrors.NewUnavailableError(fmt.Errorf("error creating address: %s", err))
	}

	return address.UID, nil
}

func measurementName(form wizard.CheckoutForm) string {
	if form.FullName != "" {
		return form.FullName
	}
	return "Checkout measurement"
}

func composeStreet(form wizard.CheckoutForm) string {
	parts := []string{}
	for _, part := range []string{form.AddressLine, form.Ward, form.District} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
