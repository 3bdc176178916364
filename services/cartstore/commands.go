package cartstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MarcGrol/tailorshop/lib/myerrors"
	"github.com/MarcGrol/tailorshop/lib/mylog"
	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
	"github.com/MarcGrol/tailorshop/services/shopapi"
)

func (s *service) Load(c context.Context, shopperUID string) ([]cartmodel.CartItem, int, error) {
	myGeneration := s.loadGeneration(shopperUID)
	generation := myGeneration.Add(1)

	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Loading cart of shopper %s", shopperUID)

	cart, found, err := s.cartStore.Get(c, shopperUID)
	if err != nil {
		return nil, 0, myerrors.NewInternalError(fmt.Errorf("error fetching cart of shopper %s: %s", shopperUID, err))
	}
	if !found || len(cart.Items) == 0 {
		return []cartmodel.CartItem{}, 0, nil
	}

	// Check product existence of all items concurrently. Completion order
	// does not matter: results land at the item's own index, so the
	// surviving items keep their relative order.
	exists := make([]bool, len(cart.Items))
	checkErrors := make([]error, len(cart.Items))

	var wg sync.WaitGroup
	for i, item := range cart.Items {
		wg.Add(1)
		go func(i int, productUID string) {
			defer wg.Done()

			_, err := s.products.GetProduct(c, productUID)
			switch {
			case err == nil:
				exists[i] = true
			case errors.Is(err, shopapi.ErrNotFound):
				exists[i] = false
			default:
				checkErrors[i] = err
			}
		}(i, item.ProductUID)
	}
	wg.Wait()

	for _, err := range checkErrors {
		if err != nil {
			return nil, 0, myerrors.NewUnavailableError(fmt.Errorf("error checking cart products: %s", err))
		}
	}

	if myGeneration.Load() != generation {
		return nil, 0, ErrLoadSuperseded
	}

	surviving := make([]cartmodel.CartItem, 0, len(cart.Items))
	for i, item := range cart.Items {
		if exists[i] {
			surviving = append(surviving, item)
		}
	}
	removed := len(cart.Items) - len(surviving)

	if removed > 0 {
		s.logger.Log(c, shopperUID, mylog.SeverityWarn, "Dropped %d stale items from cart of shopper %s", removed, shopperUID)

		err = s.cartStore.RunInTransaction(c, func(c context.Context) error {
			cart.Items = surviving
			now := s.nower.Now()
			cart.LastModified = &now

			err := s.cartStore.Put(c, shopperUID, cart)
			if err != nil {
				return myerrors.NewInternalError(fmt.Errorf("error storing reconciled cart of shopper %s: %s", shopperUID, err))
			}
			return nil
		})
		if err != nil {
			return nil, 0, err
		}
	}

	return surviving, removed, nil
}

func (s *service) AddItem(c context.Context, shopperUID string, item cartmodel.CartItem) (cartmodel.Cart, error) {
	if item.UID == "" {
		item.UID = s.uuider.Create()
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Adding item %s to cart of shopper %s", item.UID, shopperUID)

	var cart cartmodel.Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		cart, found, err = s.cartStore.Get(c, shopperUID)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching cart of shopper %s: %s", shopperUID, err))
		}
		if !found {
			cart = cartmodel.Cart{
				ShopperUID: shopperUID,
				CreatedAt:  s.nower.Now(),
			}
		}

		cart.Items = append(cart.Items, item)
		now := s.nower.Now()
		cart.LastModified = &now

		err = s.cartStore.Put(c, shopperUID, cart)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing cart of shopper %s: %s", shopperUID, err))
		}
		return nil
	})
	if err != nil {
		return cartmodel.Cart{}, err
	}

	return cart, nil
}

func (s *service) ChangeQuantity(c context.Context, shopperUID string, itemUID string, delta int) (cartmodel.Cart, error) {
	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Changing quantity of item %s by %d for shopper %s", itemUID, delta, shopperUID)

	var cart cartmodel.Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		cart, found, err = s.cartStore.Get(c, shopperUID)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching cart of shopper %s: %s", shopperUID, err))
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("cart of shopper %s not found", shopperUID))
		}

		idx := indexOfItem(cart.Items, itemUID)
		if idx < 0 {
			return myerrors.NewNotFoundError(fmt.Errorf("item %s not found in cart of shopper %s", itemUID, shopperUID))
		}

		cart.Items[idx].Quantity += delta
		if cart.Items[idx].Quantity < 1 {
			// quantity never drops below 1: removal is an explicit action
			cart.Items[idx].Quantity = 1
		}
		now := s.nower.Now()
		cart.LastModified = &now

		err = s.cartStore.Put(c, shopperUID, cart)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing cart of shopper %s: %s", shopperUID, err))
		}
		return nil
	})
	if err != nil {
		return cartmodel.Cart{}, err
	}

	return cart, nil
}

func (s *service) RemoveItem(c context.Context, shopperUID string, itemUID string) (cartmodel.Cart, error) {
	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Removing item %s from cart of shopper %s", itemUID, shopperUID)

	var cart cartmodel.Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		cart, found, err = s.cartStore.Get(c, shopperUID)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching cart of shopper %s: %s", shopperUID, err))
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("cart of shopper %s not found", shopperUID))
		}

		idx := indexOfItem(cart.Items, itemUID)
		if idx < 0 {
			return myerrors.NewNotFoundError(fmt.Errorf("item %s not found in cart of shopper %s", itemUID, shopperUID))
		}

		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
		now := s.nower.Now()
		cart.LastModified = &now

		err = s.cartStore.Put(c, shopperUID, cart)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing cart of shopper %s: %s", shopperUID, err))
		}
		return nil
	})
	if err != nil {
		return cartmodel.Cart{}, err
	}

	return cart, nil
}

func (s *service) Clear(c context.Context, shopperUID string) error {
	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Clearing cart of shopper %s", shopperUID)

	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		err := s.cartStore.Remove(c, shopperUID)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error clearing cart of shopper %s: %s", shopperUID, err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func indexOfItem(items []cartmodel.CartItem, itemUID string) int {
	for i, item := range items {
		if item.UID == itemUID {
			return i
		}
	}
	return -1
}
