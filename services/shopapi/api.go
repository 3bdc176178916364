package shopapi

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound distinguishes a dangling reference from a transport failure.
var ErrNotFound = errors.New("entity not found")

type Product struct {
	UID       string
	Name      string
	ImageURL  string
	BasePrice int
}

type Measurement struct {
	UID       string
	Name      string
	Details   MeasurementDetails
	CreatedAt time.Time
}

type MeasurementDetails struct {
	Chest        string
	Waist        string
	Shoulders    string
	Hips         string
	SleeveLength string
	Inseam       string
	Neck         string
	Notes        string
}

type Address struct {
	UID       string
	Street    string
	City      string
	Country   string
	IsDefault bool
}

type OrderItem struct {
	ProductUID      string
	FabricUID       string
	StyleOptionUIDs []string
	Quantity        int
}

type CreateOrderRequest struct {
	AddressUID     string `json:",omitempty"`
	MeasurementUID string `json:",omitempty"`
	Items          []OrderItem
	PaymentMethod  string
	Notes          string `json:",omitempty"`
}

type Order struct {
	UID            string
	AddressUID     string
	MeasurementUID string
	Items          []OrderItem
	PaymentMethod  string
	Notes          string
	CreatedAt      time.Time
}

//go:generate mockgen -source=api.go -package shopapi -destination api_mock.go ProductFetcher,MeasurementClient,AddressClient,OrderCreator

type ProductFetcher interface {
	GetProduct(c context.Context, productUID string) (Product, error)
}

type MeasurementClient interface {
	ListMeasurements(c context.Context) ([]Measurement, error)
	CreateMeasurement(c context.Context, name string, details MeasurementDetails) (Measurement, error)
}

type AddressClient interface {
	ListAddresses(c context.Context) ([]Address, error)
	CreateAddress(c context.Context, street, city, country string, isDefault bool) (Address, error)
}

type OrderCreator interface {
	CreateOrder(c context.Context, req CreateOrderRequest) (Order, error)
}
