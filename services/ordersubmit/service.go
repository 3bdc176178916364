package ordersubmit

import (
	"github.com/MarcGrol/tailorshop/lib/mylog"
	"github.com/MarcGrol/tailorshop/lib/mypublisher"
	"github.com/MarcGrol/tailorshop/lib/mystore"
	"github.com/MarcGrol/tailorshop/lib/mytime"
	"github.com/MarcGrol/tailorshop/services/shopapi"
)

type service struct {
	sessionStore mystore.Store[CheckoutSession]
	cart         CartService
	resolver     Resolver
	orders       shopapi.OrderCreator
	measurements shopapi.MeasurementClient
	addresses    shopapi.AddressClient
	publisher    mypublisher.Publisher
	nower        mytime.Nower
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(sessionStore mystore.Store[CheckoutSession], cart CartService, resolver Resolver, orders shopapi.OrderCreator, measurements shopapi.MeasurementClient, addresses shopapi.AddressClient, publisher mypublisher.Publisher, nower mytime.Nower, logger mylog.Logger) CheckoutService {
	return &service{
		sessionStore: sessionStore,
		cart:         cart,
		resolver:     resolver,
		orders:       orders,
		measurements: measurements,
		addresses:    addresses,
		publisher:    publisher,
		nower:        nower,
		logger:       logger,
	}
}
