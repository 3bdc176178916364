package cartstore

import (
	"context"
	"errors"

	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
)

// ErrLoadSuperseded is returned when a newer Load was started while this one
// was still reconciling: the stale result must not be trusted or persisted.
var ErrLoadSuperseded = errors.New("cart load superseded by a newer load")

//go:generate mockgen -source=api.go -package cartstore -destination cartservice_mock.go CartService
type CartService interface {
	// Load reads the persisted cart, drops items whose product no longer
	// exists, re-persists the corrected list and reports how many items were
	// removed (for a single aggregate user notice).
	Load(c context.Context, shopperUID string) ([]cartmodel.CartItem, int, error)
	AddItem(c context.Context, shopperUID string, item cartmodel.CartItem) (cartmodel.Cart, error)
	ChangeQuantity(c context.Context, shopperUID string, itemUID string, delta int) (cartmodel.Cart, error)
	RemoveItem(c context.Context, shopperUID string, itemUID string) (cartmodel.Cart, error)
	Clear(c context.Context, shopperUID string) error
}
