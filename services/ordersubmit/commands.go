package ordersubmit

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MarcGrol/tailorshop/lib/myerrors"
	"github.com/MarcGrol/tailorshop/lib/mylog"
	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
	"github.com/MarcGrol/tailorshop/services/ordersubmit/orderevents"
	"github.com/MarcGrol/tailorshop/services/pricing"
	"github.com/MarcGrol/tailorshop/services/shopapi"
	"github.com/MarcGrol/tailorshop/services/wizard"
)

func (s *service) Checkout(c context.Context, shopperUID string) (CheckoutPageInfo, error) {
	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Fetching checkout of shopper %s", shopperUID)

	session, err := s.getOrCreateSession(c, shopperUID)
	if err != nil {
		return CheckoutPageInfo{}, err
	}

	items, removed, err := s.cart.Load(c, shopperUID)
	if err != nil {
		return CheckoutPageInfo{}, err
	}

	return pageInfo(session, items, removed), nil
}

func (s *service) Profile(c context.Context, shopperUID string) (ProfileInfo, error) {
	s.logger.Log(c, shopperUID, mylog.SeverityDebug, "Fetching saved profile of shopper %s", shopperUID)

	measurements, err := s.measurements.ListMeasurements(c)
	if err != nil {
		return ProfileInfo{}, myerrors.NewUnavailableError(fmt.Errorf("error fetching measurements: %s", err))
	}

	addresses, err := s.addresses.ListAddresses(c)
	if err != nil {
		return ProfileInfo{}, myerrors.NewUnavailableError(fmt.Errorf("error fetching addresses: %s", err))
	}

	return ProfileInfo{
		Measurements: measurements,
		Addresses:    addresses,
	}, nil
}

func (s *service) UpdateForm(c context.Context, shopperUID string, values url.Values) (CheckoutPageInfo, error) {
	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Updating checkout form of shopper %s", shopperUID)

	form, err := wizard.NewFromValues(values)
	if err != nil {
		return CheckoutPageInfo{}, myerrors.NewInvalidInputError(err)
	}

	var session CheckoutSession
	err = s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		session, err = s.getOrCreateSession(c, shopperUID)
		if err != nil {
			return err
		}

		// Field errors are recorded on blur only: an update never clears them
		form.Errors = session.Form.Errors
		session.Form = form

		return s.storeSession(c, session)
	})
	if err != nil {
		return CheckoutPageInfo{}, err
	}

	return pageInfo(session, nil, 0), nil
}

func (s *service) ValidateField(c context.Context, shopperUID string, field string) (CheckoutPageInfo, error) {
	s.logger.Log(c, shopperUID, mylog.SeverityDebug, "Validating field %s of shopper %s", field, shopperUID)

	var session CheckoutSession
	err := s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		session, err = s.getOrCreateSession(c, shopperUID)
		if err != nil {
			return err
		}

		wizard.ValidateField(&session.Form, field)

		return s.storeSession(c, session)
	})
	if err != nil {
		return CheckoutPageInfo{}, err
	}

	return pageInfo(session, nil, 0), nil
}

func (s *service) NextStep(c context.Context, shopperUID string) (CheckoutPageInfo, error) {
	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Advancing checkout of shopper %s", shopperUID)

	items, removed, err := s.cart.Load(c, shopperUID)
	if err != nil {
		return CheckoutPageInfo{}, err
	}

	var session CheckoutSession
	err = s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		session, err = s.getOrCreateSession(c, shopperUID)
		if err != nil {
			return err
		}

		if !wizard.CanProceed(session.Step, session.Form, len(items)) {
			return myerrors.NewInvalidInputErrorf("cannot proceed from step %s", session.Step)
		}

		session.Step = wizard.Next(session.Step)
		if session.Step == wizard.StepPayment && session.Form.PaymentMethod == "" {
			session.Form.PaymentMethod = wizard.PaymentMethodCOD
		}

		return s.storeSession(c, session)
	})
	if err != nil {
		return CheckoutPageInfo{}, err
	}

	return pageInfo(session, items, removed), nil
}

func (s *service) BackStep(c context.Context, shopperUID string) (CheckoutPageInfo, error) {
	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Stepping back checkout of shopper %s", shopperUID)

	var session CheckoutSession
	err := s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		session, err = s.getOrCreateSession(c, shopperUID)
		if err != nil {
			return err
		}

		session.Step = wizard.Back(session.Step)

		return s.storeSession(c, session)
	})
	if err != nil {
		return CheckoutPageInfo{}, err
	}

	return pageInfo(session, nil, 0), nil
}

func (s *service) Submit(c context.Context, shopperUID string) (CheckoutPageInfo, error) {
	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Submitting order of shopper %s", shopperUID)

	session, found, err := s.sessionStore.Get(c, shopperUID)
	if err != nil {
		return CheckoutPageInfo{}, myerrors.NewInternalError(fmt.Errorf("error fetching checkout of shopper %s: %s", shopperUID, err))
	}
	if !found || session.Step != wizard.StepConfirm {
		return CheckoutPageInfo{}, myerrors.NewInvalidInputErrorf("checkout of shopper %s is not ready for submission", shopperUID)
	}

	items, _, err := s.cart.Load(c, shopperUID)
	if err != nil {
		return CheckoutPageInfo{}, err
	}
	if len(items) == 0 {
		return CheckoutPageInfo{}, myerrors.NewInvalidInputErrorf("cart of shopper %s is empty", shopperUID)
	}

	// A missing measurement is survivable: the tailor follows up with the
	// shopper. A missing address is not, so that failure aborts the
	// submission with cart and form untouched.
	measurementUID := s.resolver.ResolveMeasurement(c, session.Form)

	addressUID, err := s.resolver.ResolveAddress(c, session.Form)
	if err != nil {
		return CheckoutPageInfo{}, err
	}

	order, err := s.orders.CreateOrder(c, shopapi.CreateOrderRequest{
		AddressUID:     addressUID,
		MeasurementUID: measurementUID,
		Items:          orderItems(items),
		PaymentMethod:  string(session.Form.PaymentMethod),
		Notes:          session.Form.Notes,
	})
	if err != nil {
		return CheckoutPageInfo{}, err
	}

	s.logger.Log(c, shopperUID, mylog.SeverityInfo, "Order %s created for shopper %s", order.UID, shopperUID)

	err = s.cart.Clear(c, shopperUID)
	if err != nil {
		// the order exists: do not fail the submission over cart cleanup
		s.logger.Log(c, shopperUID, mylog.SeverityWarn, "Error clearing cart of shopper %s after order %s: %s", shopperUID, order.UID, err)
	}

	err = s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		session.Step = wizard.StepComplete
		session.OrderUID = order.UID

		err := s.storeSession(c, session)
		if err != nil {
			return err
		}

		return s.publisher.Publish(c, orderevents.TopicName, orderevents.OrderCreated{
			OrderUID:      order.UID,
			ShopperUID:    shopperUID,
			ItemCount:     len(items),
			TotalPrice:    pricing.CartTotal(items),
			PaymentMethod: string(session.Form.PaymentMethod),
			CreatedAt:     s.nower.Now(),
		})
	})
	if err != nil {
		return CheckoutPageInfo{}, err
	}

	return pageInfo(session, nil, 0), nil
}

func (s *service) getOrCreateSession(c context.Context, shopperUID string) (CheckoutSession, error) {
	session, found, err := s.sessionStore.Get(c, shopperUID)
	if err != nil {
		return CheckoutSession{}, myerrors.NewInternalError(fmt.Errorf("error fetching checkout of shopper %s: %s", shopperUID, err))
	}
	if !found || session.Step.IsTerminal() {
		session = CheckoutSession{
			ShopperUID: shopperUID,
			Step:       wizard.StepCart,
			Form:       wizard.NewCheckoutForm(),
			CreatedAt:  s.nower.Now(),
		}
	}
	return session, nil
}

func (s *service) storeSession(c context.Context, session CheckoutSession) error {
	now := s.nower.Now()
	session.LastModified = &now

	err := s.sessionStore.Put(c, session.ShopperUID, session)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error storing checkout of shopper %s: %s", session.ShopperUID, err))
	}
	return nil
}

func orderItems(items []cartmodel.CartItem) []shopapi.OrderItem {
	orderItems := make([]shopapi.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, shopapi.OrderItem{
			ProductUID:      item.ProductUID,
			FabricUID:       item.FabricUID,
			StyleOptionUIDs: item.StyleOptionUIDs,
			Quantity:        item.Quantity,
		})
	}
	return orderItems
}

func pageInfo(session CheckoutSession, items []cartmodel.CartItem, removed int) CheckoutPageInfo {
	return CheckoutPageInfo{
		ShopperUID:       session.ShopperUID,
		Step:             session.Step,
		Form:             session.Form,
		Items:            items,
		RemovedItemCount: removed,
		TotalPrice:       pricing.CartTotal(items),
		OrderUID:         session.OrderUID,
	}
}
