package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/tailorshop/lib/mycontext"
	"github.com/MarcGrol/tailorshop/lib/myerrors"
	"github.com/MarcGrol/tailorshop/lib/myhttp"
	"github.com/MarcGrol/tailorshop/lib/mylog"
	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
	"github.com/MarcGrol/tailorshop/services/pricing"
)

type webService struct {
	logger  mylog.Logger
	service CartService
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(service CartService) *webService {
	return &webService{
		logger:  mylog.New("cartstore"),
		service: service,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/cart/{shopperUID}", s.cartPage()).Methods("GET")
	router.HandleFunc("/api/cart/{shopperUID}/item", s.addItemPage()).Methods("POST")
	router.HandleFunc("/api/cart/{shopperUID}/item/{itemUID}/quantity", s.changeQuantityPage()).Methods("PUT")
	router.HandleFunc("/api/cart/{shopperUID}/item/{itemUID}", s.removeItemPage()).Methods("DELETE")

	return nil
}

type CartPageInfo struct {
	ShopperUID       string
	Items            []cartmodel.CartItem
	RemovedItemCount int
	TotalPrice       int
}

func (s *webService) cartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]

		items, removed, err := s.service.Load(c, shopperUID)
		if err != nil {
			if errors.Is(err, ErrLoadSuperseded) {
				errorWriter.WriteError(c, w, 1, myerrors.NewConflictError(err))
				return
			}
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, CartPageInfo{
			ShopperUID:       shopperUID,
			Items:            items,
			RemovedItemCount: removed,
			TotalPrice:       pricing.CartTotal(items),
		})
	}
}

func (s *webService) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]

		item := cartmodel.CartItem{}
		err := json.NewDecoder(r.Body).Decode(&item)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing item: %s", err)))
			return
		}
		if item.ProductUID == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("missing productUid"))
			return
		}

		cart, err := s.service.AddItem(c, shopperUID, item)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, cartToPageInfo(cart))
	}
}

type quantityChangeRequest struct {
	Delta int
}

func (s *webService) changeQuantityPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]
		itemUID := mux.Vars(r)["itemUID"]

		req := quantityChangeRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing quantity change: %s", err)))
			return
		}

		cart, err := s.service.ChangeQuantity(c, shopperUID, itemUID, req.Delta)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, cartToPageInfo(cart))
	}
}

func (s *webService) removeItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]
		itemUID := mux.Vars(r)["itemUID"]

		cart, err := s.service.RemoveItem(c, shopperUID, itemUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, cartToPageInfo(cart))
	}
}

func cartToPageInfo(cart cartmodel.Cart) CartPageInfo {
	return CartPageInfo{
		ShopperUID: cart.ShopperUID,
		Items:      cart.Items,
		TotalPrice: pricing.CartTotal(cart.Items),
	}
}
