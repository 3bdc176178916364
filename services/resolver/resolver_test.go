package resolver

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/tailorshop/lib/myerrors"
	"github.com/MarcGrol/tailorshop/services/shopapi"
	"github.com/MarcGrol/tailorshop/services/wizard"
)

func TestResolveMeasurement(t *testing.T) {
	t.Run("saved measurement passes through without remote call", func(t *testing.T) {
		c, r, _, _, cleanup := setup(t)
		defer cleanup()

		// given
		form := wizard.NewCheckoutForm()
		form.MeasurementUID = "meas-123"
		form.Measurement.Chest = "98" // stale inline values are ignored

		// when
		uid := r.ResolveMeasurement(c, form)

		// then
		assert.Equal(t, "meas-123", uid)
	})

	t.Run("no measurement at all", func(t *testing.T) {
		c, r, _, _, cleanup := setup(t)
		defer cleanup()

		// when
		uid := r.ResolveMeasurement(c, wizard.NewCheckoutForm())

		// then
		assert.Equal(t, "", uid)
	})

	t.Run("inline measurement is created remotely", func(t *testing.T) {
		c, r, measurements, _, cleanup := setup(t)
		defer cleanup()

		// given
		form := wizard.NewCheckoutForm()
		form.FullName = "Nguyen Van An"
		form.Measurement.Chest = "98"
		form.Measurement.Waist = "82"
		form.Measurement.Shoulders = "46"
		measurements.EXPECT().CreateMeasurement(gomock.Any(), "Nguyen Van An", shopapi.MeasurementDetails{
			Chest:     "98",
			Waist:     "82",
			Shoulders: "46",
		}).Return(shopapi.Measurement{UID: "meas-new"}, nil)

		// when
		uid := r.ResolveMeasurement(c, form)

		// then
		assert.Equal(t, "meas-new", uid)
	})

	t.Run("creation failure degrades to no measurement", func(t *testing.T) {
		c, r, measurements, _, cleanup := setup(t)
		defer cleanup()

		// given
		form := wizard.NewCheckoutForm()
		form.Measurement.Chest = "98"
		measurements.EXPECT().CreateMeasurement(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(shopapi.Measurement{}, fmt.Errorf("service down"))

		// when
		uid := r.ResolveMeasurement(c, form)

		// then
		assert.Equal(t, "", uid)
	})
}

func TestResolveAddress(t *testing.T) {
	t.Run("saved address passes through without remote call", func(t *testing.T) {
		c, r, _, _, cleanup := setup(t)
		defer cleanup()

		// given
		form := wizard.NewCheckoutForm()
		form.AddressUID = "addr-123"

		// when
		uid, err := r.ResolveAddress(c, form)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "addr-123", uid)
	})

	t.Run("new address composes street from line, ward and district", func(t *testing.T) {
		c, r, _, addresses, cleanup := setup(t)
		defer cleanup()

		// given
		form := wizard.NewCheckoutForm()
		form.AddressLine = "12 Hang Gai"
		form.Ward = "Hang Trong"
		form.District = "Hoan Kiem"
		form.City = "Hanoi"
		addresses.EXPECT().CreateAddress(gomock.Any(), "12 Hang Gai, Hang Trong, Hoan Kiem", "Hanoi", "VN", false).
			Return(shopapi.Address{UID: "addr-new"}, nil)

		// when
		uid, err := r.ResolveAddress(c, form)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "addr-new", uid)
	})

	t.Run("creation failure is fatal", func(t *testing.T) {
		c, r, _, addresses, cleanup := setup(t)
		defer cleanup()

		// given
		form := wizard.NewCheckoutForm()
		form.AddressLine = "12 Hang Gai"
		form.City = "Hanoi"
		addresses.EXPECT().CreateAddress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(shopapi.Address{}, fmt.Errorf("service down"))

		// when
		_, err := r.ResolveAddress(c, form)

		// then
		assert.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, myerrors.GetHTTPStatus(err))
	})
}

func setup(t *testing.T) (context.Context, *Resolver, *shopapi.MockMeasurementClient, *shopapi.MockAddressClient, func()) {
	c := context.TODO()
	ctrl := gomock.NewController(t)

	measurements := shopapi.NewMockMeasurementClient(ctrl)
	addresses := shopapi.NewMockAddressClient(ctrl)

	r := NewResolver(Config{}, measurements, addresses)

	return c, r, measurements, addresses, ctrl.Finish
}
