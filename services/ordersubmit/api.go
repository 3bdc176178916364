package ordersubmit

import (
	"context"
	"net/url"

	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
	"github.com/MarcGrol/tailorshop/services/wizard"
)

type CheckoutService interface {
	// Checkout returns the current wizard state, creating a fresh session at
	// the cart step when none exists yet.
	Checkout(c context.Context, shopperUID string) (CheckoutPageInfo, error)
	// Profile returns the shopper's saved measurements and addresses for the
	// measurement and shipping steps.
	Profile(c context.Context, shopperUID string) (ProfileInfo, error)
	UpdateForm(c context.Context, shopperUID string, values url.Values) (CheckoutPageInfo, error)
	ValidateField(c context.Context, shopperUID string, field string) (CheckoutPageInfo, error)
	NextStep(c context.Context, shopperUID string) (CheckoutPageInfo, error)
	BackStep(c context.Context, shopperUID string) (CheckoutPageInfo, error)
	Submit(c context.Context, shopperUID string) (CheckoutPageInfo, error)
}

//go:generate mockgen -source=api.go -package ordersubmit -destination api_mock.go CartService,Resolver

// CartService is the slice of the cart component this service depends on.
type CartService interface {
	Load(c context.Context, shopperUID string) ([]cartmodel.CartItem, int, error)
	Clear(c context.Context, shopperUID string) error
}

// Resolver turns form choices into shop-backend uids at submission time.
type Resolver interface {
	ResolveMeasurement(c context.Context, form wizard.CheckoutForm) string
	ResolveAddress(c context.Context, form wizard.CheckoutForm) (string, error)
}
