package shopapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MarcGrol/tailorshop/lib/myhttpclient"
)

// Client talks JSON to the shop backend that owns products, user-profile
// resources (measurements, addresses) and orders.
type Client struct {
	baseURL string
	sender  myhttpclient.HTTPSender
}

func NewClient(baseURL string, sender myhttpclient.HTTPSender) *Client {
	return &Client{
		baseURL: baseURL,
		sender:  sender,
	}
}

func (c *Client) GetProduct(ctx context.Context, productUID string) (Product, error) {
	product := Product{}
	err := c.get(ctx, fmt.Sprintf("/api/product/%s", productUID), &product)
	if err != nil {
		return Product{}, err
	}

	return product, nil
}

func (c *Client) ListMeasurements(ctx context.Context) ([]Measurement, error) {
	measurements := []Measurement{}
	err := c.get(ctx, "/api/measurement", &measurements)
	if err != nil {
		return nil, err
	}

	return measurements, nil
}

func (c *Client) CreateMeasurement(ctx context.Context, name string, details MeasurementDetails) (Measurement, error) {
	measurement := Measurement{}
	err := c.post(ctx, "/api/measurement", struct {
		Name    string
		Details MeasurementDetails
	}{Name: name, Details: details}, &measurement)
	if err != nil {
		return Measurement{}, err
	}

	return measurement, nil
}

func (c *Client) ListAddresses(ctx context.Context) ([]Address, error) {
	addresses := []Address{}
	err := c.get(ctx, "/api/address", &addresses)
	if err != nil {
		return nil, err
	}

	return addresses, nil
}

func (c *Client) CreateAddress(ctx context.Context, street, city, country string, isDefault bool) (Address, error) {
	address := Address{}
	err := c.post(ctx, "/api/address", struct {
		Street    string
		City      string
		Country   string
		IsDefault bool
	}{Street: street, City: city, Country: country, IsDefault: isDefault}, &address)
	if err != nil {
		return Address{}, err
	}

	return address, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error) {
	order := Order{}
	err := c.post(ctx, "/api/order", req, &order)
	if err != nil {
		return Order{}, err
	}

	return order, nil
}

func (c *Client) get(ctx context.Context, path string, resp any) error {
	return c.send(ctx, http.MethodGet, path, nil, resp)
}

func (c *Client) post(ctx context.Context, path string, req any, resp any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("error marshalling request for %s: %s", path, err)
	}

	return c.send(ctx, http.MethodPost, path, body, resp)
}

func (c *Client) send(ctx context.Context, method string, path string, body []byte, resp any) error {
	httpStatus, respPayload, err := c.sender.Send(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	if httpStatus == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if httpStatus < 200 || httpStatus >= 300 {
		return fmt.Errorf("%s %s returned status %d", method, path, httpStatus)
	}

	err = json.Unmarshal(respPayload, resp)
	if err != nil {
		return fmt.Errorf("error parsing response of %s %s: %s", method, path, err)
	}

	return nil
}
