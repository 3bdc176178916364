package cartstore

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/tailorshop/lib/myerrors"
	"github.com/MarcGrol/tailorshop/lib/mylog"
	"github.com/MarcGrol/tailorshop/lib/mystore"
	"github.com/MarcGrol/tailorshop/lib/mytime"
	"github.com/MarcGrol/tailorshop/lib/myuuid"
	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
	"github.com/MarcGrol/tailorshop/services/shopapi"
)

var (
	shirt = cartmodel.CartItem{
		UID:        "item-1",
		ProductUID: "prod-shirt",
		Product:    cartmodel.ProductSnapshot{Name: "Linen shirt", BasePrice: 4500000},
		Quantity:   1,
	}
	trousers = cartmodel.CartItem{
		UID:        "item-2",
		ProductUID: "prod-trousers",
		Product:    cartmodel.ProductSnapshot{Name: "Wool trousers", BasePrice: 6000000},
		Quantity:   2,
	}
	coat = cartmodel.CartItem{
		UID:        "item-3",
		ProductUID: "prod-coat",
		Product:    cartmodel.ProductSnapshot{Name: "Winter coat", BasePrice: 9000000},
		Quantity:   1,
	}
)

func TestLoad(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		c, svc, _, _, cleanup := setup(t)
		defer cleanup()

		// given: nothing stored

		// when
		items, removed, err := svc.Load(c, "shopper-1")

		// then
		assert.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, 0, removed)
	})

	t.Run("all products still exist", func(t *testing.T) {
		c, svc, products, cartStore, cleanup := setup(t)
		defer cleanup()

		// given
		storeCart(t, c, cartStore, "shopper-1", shirt, trousers)
		products.EXPECT().GetProduct(gomock.Any(), "prod-shirt").Return(shopapi.Product{UID: "prod-shirt"}, nil)
		products.EXPECT().GetProduct(gomock.Any(), "prod-trousers").Return(shopapi.Product{UID: "prod-trousers"}, nil)

		// when
		items, removed, err := svc.Load(c, "shopper-1")

		// then
		assert.NoError(t, err)
		assert.Equal(t, []cartmodel.CartItem{shirt, trousers}, items)
		assert.Equal(t, 0, removed)
	})

	t.Run("discontinued product is dropped, order of survivors preserved", func(t *testing.T) {
		c, svc, products, cartStore, cleanup := setup(t)
		defer cleanup()

		// given
		storeCart(t, c, cartStore, "shopper-1", shirt, trousers, coat)
		products.EXPECT().GetProduct(gomock.Any(), "prod-shirt").Return(shopapi.Product{UID: "prod-shirt"}, nil)
		products.EXPECT().GetProduct(gomock.Any(), "prod-trousers").
			Return(shopapi.Product{}, fmt.Errorf("product prod-trousers: %w", shopapi.ErrNotFound))
		products.EXPECT().GetProduct(gomock.Any(), "prod-coat").Return(shopapi.Product{UID: "prod-coat"}, nil)

		// when
		items, removed, err := svc.Load(c, "shopper-1")

		// then
		assert.NoError(t, err)
		assert.Equal(t, []cartmodel.CartItem{shirt, coat}, items)
		assert.Equal(t, 1, removed)

		// and: the corrected cart has been persisted
		stored, found, err := cartStore.Get(c, "shopper-1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []cartmodel.CartItem{shirt, coat}, stored.Items)
	})

	t.Run("transport error keeps cart untouched", func(t *testing.T) {
		c, svc, products, cartStore, cleanup := setup(t)
		defer cleanup()

		// given
		storeCart(t, c, cartStore, "shopper-1", shirt, trousers)
		products.EXPECT().GetProduct(gomock.Any(), "prod-shirt").Return(shopapi.Product{UID: "prod-shirt"}, nil)
		products.EXPECT().GetProduct(gomock.Any(), "prod-trousers").Return(shopapi.Product{}, fmt.Errorf("connection refused"))

		// when
		_, _, err := svc.Load(c, "shopper-1")

		// then
		assert.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, myerrors.GetHTTPStatus(err))

		// and: no items were dropped
		stored, found, err := cartStore.Get(c, "shopper-1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Len(t, stored.Items, 2)
	})

	t.Run("superseded load is abandoned", func(t *testing.T) {
		c, svc, products, cartStore, cleanup := setup(t)
		defer cleanup()

		// given
		storeCart(t, c, cartStore, "shopper-1", shirt)

		// A competing load starts while the first one is still checking
		// products: the first load must not report or persist anything.
		products.EXPECT().GetProduct(gomock.Any(), "prod-shirt").
			DoAndReturn(func(c context.Context, productUID string) (shopapi.Product, error) {
				items, removed, err := svc.Load(c, "shopper-1")
				assert.NoError(t, err)
				assert.Equal(t, []cartmodel.CartItem{shirt}, items)
				assert.Equal(t, 0, removed)
				return shopapi.Product{UID: productUID}, nil
			})
		products.EXPECT().GetProduct(gomock.Any(), "prod-shirt").Return(shopapi.Product{UID: "prod-shirt"}, nil)

		// when
		_, _, err := svc.Load(c, "shopper-1")

		// then
		assert.ErrorIs(t, err, ErrLoadSuperseded)
	})

	t.Run("load of another shopper does not supersede", func(t *testing.T) {
		c, svc, products, cartStore, cleanup := setup(t)
		defer cleanup()

		// given
		storeCart(t, c, cartStore, "shopper-1", shirt)
		storeCart(t, c, cartStore, "shopper-2", trousers)

		// Shopper 2 loads while shopper 1's load is still checking
		// products: the loads are unrelated and both must succeed.
		products.EXPECT().GetProduct(gomock.Any(), "prod-shirt").
			DoAndReturn(func(c context.Context, productUID string) (shopapi.Product, error) {
				items, removed, err := svc.Load(c, "shopper-2")
				assert.NoError(t, err)
				assert.Equal(t, []cartmodel.CartItem{trousers}, items)
				assert.Equal(t, 0, removed)
				return shopapi.Product{UID: productUID}, nil
			})
		products.EXPECT().GetProduct(gomock.Any(), "prod-trousers").Return(shopapi.Product{UID: "prod-trousers"}, nil)

		// when
		items, removed, err := svc.Load(c, "shopper-1")

		// then
		assert.NoError(t, err)
		assert.Equal(t, []cartmodel.CartItem{shirt}, items)
		assert.Equal(t, 0, removed)
	})
}

func TestAddItem(t *testing.T) {
	t.Run("first item creates the cart", func(t *testing.T) {
		c, svc, _, cartStore, cleanup := setup(t)
		defer cleanup()

		// when
		cart, err := svc.AddItem(c, "shopper-1", shirt)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "shopper-1", cart.ShopperUID)
		assert.Equal(t, []cartmodel.CartItem{shirt}, cart.Items)
		assert.Equal(t, mytime.ExampleTime, cart.CreatedAt)

		stored, found, err := cartStore.Get(c, "shopper-1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Len(t, stored.Items, 1)
	})

	t.Run("missing uid and quantity are defaulted", func(t *testing.T) {
		c, svc, _, _, cleanup := setup(t)
		defer cleanup()

		// given
		item := cartmodel.CartItem{ProductUID: "prod-shirt", Quantity: 0}

		// when
		cart, err := svc.AddItem(c, "shopper-1", item)

		// then
		assert.NoError(t, err)
		assert.Equal(t, exampleUID, cart.Items[0].UID)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})
}

func TestChangeQuantity(t *testing.T) {
	t.Run("increment", func(t *testing.T) {
		c, svc, _, cartStore, cleanup := setup(t)
		defer cleanup()

		// given
		storeCart(t, c, cartStore, "shopper-1", shirt)

		// when
		cart, err := svc.ChangeQuantity(c, "shopper-1", "item-1", 2)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 3, cart.Items[0].Quantity)
	})

	t.Run("decrement never drops below one", func(t *testing.T) {
		c, svc, _, cartStore, cleanup := setup(t)
		defer cleanup()

		// given
		storeCart(t, c, cartStore, "shopper-1", trousers)

		// when
		cart, err := svc.ChangeQuantity(c, "shopper-1", "item-2", -5)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})

	t.Run("unknown item", func(t *testing.T) {
		c, svc, _, cartStore, cleanup := setup(t)
		defer cleanup()

		// given
		storeCart(t, c, cartStore, "shopper-1", shirt)

		// when
		_, err := svc.ChangeQuantity(c, "shopper-1", "item-unknown", 1)

		// then
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, myerrors.GetHTTPStatus(err))
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("remove keeps other items", func(t *testing.T) {
		c, svc, _, cartStore, cleanup := setup(t)
		defer cleanup()

		// given
		storeCart(t, c, cartStore, "shopper-1", shirt, trousers)

		// when
		cart, err := svc.RemoveItem(c, "shopper-1", "item-1")

		// then
		assert.NoError(t, err)
		assert.Equal(t, []cartmodel.CartItem{trousers}, cart.Items)
	})

	t.Run("unknown cart", func(t *testing.T) {
		c, svc, _, _, cleanup := setup(t)
		defer cleanup()

		// when
		_, err := svc.RemoveItem(c, "shopper-unknown", "item-1")

		// then
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, myerrors.GetHTTPStatus(err))
	})
}

func TestClear(t *testing.T) {
	c, svc, _, cartStore, cleanup := setup(t)
	defer cleanup()

	// given
	storeCart(t, c, cartStore, "shopper-1", shirt, trousers)

	// when
	err := svc.Clear(c, "shopper-1")

	// then
	assert.NoError(t, err)
	_, found, err := cartStore.Get(c, "shopper-1")
	assert.NoError(t, err)
	assert.False(t, found)
}

const exampleUID = "abcdef"

func setup(t *testing.T) (context.Context, CartService, *shopapi.MockProductFetcher, mystore.Store[cartmodel.Cart], func()) {
	c := context.TODO()

	ctrl := gomock.NewController(t)

	cartStore, storeCleanup, err := mystore.New[cartmodel.Cart](c)
	assert.NoError(t, err)

	products := shopapi.NewMockProductFetcher(ctrl)

	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	uuider := myuuid.NewMockUUIDer(ctrl)
	uuider.EXPECT().Create().Return(exampleUID).AnyTimes()

	svc := NewService(cartStore, products, nower, uuider, mylog.New("cartstore"))

	return c, svc, products, cartStore, func() {
		storeCleanup()
		ctrl.Finish()
	}
}

func storeCart(t *testing.T, c context.Context, cartStore mystore.Store[cartmodel.Cart], shopperUID string, items ...cartmodel.CartItem) {
	err := cartStore.Put(c, shopperUID, cartmodel.Cart{
		ShopperUID: shopperUID,
		CreatedAt:  mytime.ExampleTime,
		Items:      items,
	})
	assert.NoError(t, err)
}
