package ordersubmit

import (
	"time"

	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
	"github.com/MarcGrol/tailorshop/services/shopapi"
	"github.com/MarcGrol/tailorshop/services/wizard"
)

// CheckoutSession is the persisted wizard state of one shopper. There is at
// most one active session per shopper; a completed session is replaced on the
// next checkout.
type CheckoutSession struct {
	ShopperUID   string
	Step         wizard.Step
	Form         wizard.CheckoutForm
	OrderUID     string
	CreatedAt    time.Time
	LastModified *time.Time
}

// CheckoutPageInfo is what the UI renders after every wizard interaction.
type CheckoutPageInfo struct {
	ShopperUID       string
	Step             wizard.Step
	Form             wizard.CheckoutForm
	Items            []cartmodel.CartItem
	RemovedItemCount int
	TotalPrice       int
	OrderUID         string `json:",omitempty"`
}

// ProfileInfo lists the shopper's saved selections offered by the wizard.
type ProfileInfo struct {
	Measurements []shopapi.Measurement
	Addresses    []shopapi.Address
}
