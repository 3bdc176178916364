package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/tailorshop/lib/myhttpclient"
)

func TestGetProduct(t *testing.T) {
	t.Run("existing product", func(t *testing.T) {
		c, client, sender, cleanup := setup(t)
		defer cleanup()

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodGet, "http://shop/api/product/prod-shirt", nil).
			Return(http.StatusOK, []byte(`{"UID":"prod-shirt","Name":"Linen shirt","BasePrice":4500000}`), nil)

		// when
		product, err := client.GetProduct(c, "prod-shirt")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "prod-shirt", product.UID)
		assert.Equal(t, 4500000, product.BasePrice)
	})

	t.Run("discontinued product", func(t *testing.T) {
		c, client, sender, cleanup := setup(t)
		defer cleanup()

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodGet, "http://shop/api/product/prod-gone", nil).
			Return(http.StatusNotFound, []byte(`{}`), nil)

		// when
		_, err := client.GetProduct(c, "prod-gone")

		// then
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("backend down", func(t *testing.T) {
		c, client, sender, cleanup := setup(t)
		defer cleanup()

		// given
		sender.EXPECT().Send(gomock.Any(), http.MethodGet, "http://shop/api/product/prod-shirt", nil).
			Return(0, nil, fmt.Errorf("connection refused"))

		// when
		_, err := client.GetProduct(c, "prod-shirt")

		// then
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateOrder(t *testing.T) {
	c, client, sender, cleanup := setup(t)
	defer cleanup()

	// given
	sender.EXPECT().Send(gomock.Any(), http.MethodPost, "http://shop/api/order", gomock.Any()).
		Return(http.StatusOK, []byte(`{"UID":"order-1"}`), nil)

	// when
	order, err := client.CreateOrder(c, CreateOrderRequest{
		AddressUID:    "addr-1",
		Items:         []OrderItem{{ProductUID: "prod-shirt", Quantity: 1}},
		PaymentMethod: "COD",
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, "order-1", order.UID)
}

func TestCreateAddress(t *testing.T) {
	c, client, sender, cleanup := setup(t)
	defer cleanup()

	// given
	sender.EXPECT().Send(gomock.Any(), http.MethodPost, "http://shop/api/address",
		[]byte(`{"Street":"12 Hang Gai, Hoan Kiem","City":"Hanoi","Country":"VN","IsDefault":false}`)).
		Return(http.StatusOK, []byte(`{"UID":"addr-1"}`), nil)

	// when
	address, err := client.CreateAddress(c, "12 Hang Gai, Hoan Kiem", "Hanoi", "VN", false)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "addr-1", address.UID)
}

func setup(t *testing.T) (context.Context, *Client, *myhttpclient.MockHTTPSender, func()) {
	c := context.TODO()
	ctrl := gomock.NewController(t)

	sender := myhttpclient.NewMockHTTPSender(ctrl)
	client := NewClient("http://shop", sender)

	return c, client, sender, ctrl.Finish
}
