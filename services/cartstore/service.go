package cartstore

import (
	"sync"
	"sync/atomic"

	"github.com/MarcGrol/tailorshop/lib/mylog"
	"github.com/MarcGrol/tailorshop/lib/mystore"
	"github.com/MarcGrol/tailorshop/lib/mytime"
	"github.com/MarcGrol/tailorshop/lib/myuuid"
	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
	"github.com/MarcGrol/tailorshop/services/shopapi"
)

type service struct {
	cartStore mystore.Store[cartmodel.Cart]
	products  shopapi.ProductFetcher
	nower     mytime.Nower
	uuider    myuuid.UUIDer
	logger    mylog.Logger

	// loadGenerations invalidates the effect of a still-in-flight prior Load.
	// Keyed per shopper: one shopper reloading never cancels another's load.
	loadGenerations sync.Map // shopperUID -> *atomic.Int64
}

func (s *service) loadGeneration(shopperUID string) *atomic.Int64 {
	generation, _ := s.loadGenerations.LoadOrStore(shopperUID, &atomic.Int64{})
	return generation.(*atomic.Int64)
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(store mystore.Store[cartmodel.Cart], products shopapi.ProductFetcher, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) CartService {
	return &service{
		cartStore: store,
		products:  products,
		nower:     nower,
		uuider:    uuider,
		logger:    logger,
	}
}
