package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/MarcGrol/tailorshop/lib/myhttpclient"
	"github.com/MarcGrol/tailorshop/lib/mylog"
	"github.com/MarcGrol/tailorshop/lib/mypublisher"
	"github.com/MarcGrol/tailorshop/lib/mypubsub"
	"github.com/MarcGrol/tailorshop/lib/myqueue"
	"github.com/MarcGrol/tailorshop/lib/mystore"
	"github.com/MarcGrol/tailorshop/lib/mytime"
	"github.com/MarcGrol/tailorshop/lib/myuuid"
	"github.com/MarcGrol/tailorshop/services/cartstore"
	"github.com/MarcGrol/tailorshop/services/cartstore/cartmodel"
	"github.com/MarcGrol/tailorshop/services/ordersubmit"
	"github.com/MarcGrol/tailorshop/services/resolver"
	"github.com/MarcGrol/tailorshop/services/shopapi"
)

func main() {
	c := context.Background()

	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file found, relying on the environment")
	}

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	shopClient := shopapi.NewClient(shopBackendBaseURL(), myhttpclient.New())

	cartService := newCartService(c, router, shopClient, nower, uuider)

	newCheckoutService(c, router, cartService, shopClient, publisher, nower)

	startWebServerBlocking(router)
}

func newCartService(c context.Context, router *mux.Router, shopClient *shopapi.Client, nower mytime.Nower, uuider myuuid.UUIDer) cartstore.CartService {
	cartStore, _, err := mystore.New[cartmodel.Cart](c)
	if err != nil {
		log.Fatalf("Error creating cart store: %s", err)
	}

	cartService := cartstore.NewService(cartStore, shopClient, nower, uuider, mylog.New("cartstore"))

	err = cartstore.NewWebService(cartService).RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering cart endpoints: %s", err)
	}

	return cartService
}

func newCheckoutService(c context.Context, router *mux.Router, cartService cartstore.CartService, shopClient *shopapi.Client, publisher mypublisher.Publisher, nower mytime.Nower) {
	sessionStore, _, err := mystore.New[ordersubmit.CheckoutSession](c)
	if err != nil {
		log.Fatalf("Error creating checkout store: %s", err)
	}

	uidResolver := resolver.NewResolver(resolver.Config{
		DefaultCountry: os.Getenv("DEFAULT_COUNTRY"),
	}, shopClient, shopClient)

	checkoutService := ordersubmit.NewService(sessionStore, cartService, uidResolver, shopClient, shopClient, shopClient, publisher, nower, mylog.New("ordersubmit"))

	err = ordersubmit.NewWebService(checkoutService, publisher).RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout endpoints: %s", err)
	}
}

func shopBackendBaseURL() string {
	baseURL := os.Getenv("SHOP_BACKEND_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8081"
	}
	return baseURL
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
