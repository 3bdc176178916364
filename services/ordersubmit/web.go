package ordersubmit

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/tailorshop/lib/mycontext"
	"github.com/MarcGrol/tailorshop/lib/myerrors"
	"github.com/MarcGrol/tailorshop/lib/myhttp"
	"github.com/MarcGrol/tailorshop/lib/mylog"
	"github.com/MarcGrol/tailorshop/lib/mypublisher"
	"github.com/MarcGrol/tailorshop/services/cartstore"
	"github.com/MarcGrol/tailorshop/services/ordersubmit/orderevents"
)

type webService struct {
	logger    mylog.Logger
	service   CheckoutService
	publisher mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(service CheckoutService, publisher mypublisher.Publisher) *webService {
	return &webService{
		logger:    mylog.New("ordersubmit"),
		service:   service,
		publisher: publisher,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/checkout/{shopperUID}", s.checkoutPage()).Methods("GET")
	router.HandleFunc("/api/checkout/{shopperUID}/profile", s.profilePage()).Methods("GET")
	router.HandleFunc("/api/checkout/{shopperUID}/form", s.updateFormPage()).Methods("PUT")
	router.HandleFunc("/api/checkout/{shopperUID}/validate/{field}", s.validateFieldPage()).Methods("PUT")
	router.HandleFunc("/api/checkout/{shopperUID}/next", s.nextStepPage()).Methods("PUT")
	router.HandleFunc("/api/checkout/{shopperUID}/back", s.backStepPage()).Methods("PUT")
	router.HandleFunc("/api/checkout/{shopperUID}/submit", s.submitPage()).Methods("POST")

	err := s.publisher.CreateTopic(c, orderevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", orderevents.TopicName, err)
	}

	return nil
}

func (s *webService) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]

		page, err := s.service.Checkout(c, shopperUID)
		if err != nil {
			writeCheckoutError(c, errorWriter, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, page)
	}
}

func (s *webService) profilePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]

		profile, err := s.service.Profile(c, shopperUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, profile)
	}
}

func (s *webService) updateFormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing form: %s", err)))
			return
		}

		page, err := s.service.UpdateForm(c, shopperUID, r.Form)
		if err != nil {
			writeCheckoutError(c, errorWriter, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, page)
	}
}

func (s *webService) validateFieldPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]
		field := mux.Vars(r)["field"]

		page, err := s.service.ValidateField(c, shopperUID, field)
		if err != nil {
			writeCheckoutError(c, errorWriter, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, page)
	}
}

func (s *webService) nextStepPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]

		page, err := s.service.NextStep(c, shopperUID)
		if err != nil {
			writeCheckoutError(c, errorWriter, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, page)
	}
}

func (s *webService) backStepPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]

		page, err := s.service.BackStep(c, shopperUID)
		if err != nil {
			writeCheckoutError(c, errorWriter, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, page)
	}
}

func (s *webService) submitPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		shopperUID := mux.Vars(r)["shopperUID"]

		page, err := s.service.Submit(c, shopperUID)
		if err != nil {
			writeCheckoutError(c, errorWriter, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, page)
	}
}

func writeCheckoutError(c context.Context, errorWriter myhttp.ResponseWriter, w http.ResponseWriter, errorCode int, err error) {
	if errors.Is(err, cartstore.ErrLoadSuperseded) {
		errorWriter.WriteError(c, w, errorCode, myerrors.NewConflictError(err))
		return
	}
	errorWriter.WriteError(c, w, errorCode, err)
}
