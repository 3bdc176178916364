package orderevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MarcGrol/tailorshop/lib/myerrors"
	"github.com/MarcGrol/tailorshop/lib/myevents"
)

const (
	TopicName        = "order"
	orderCreatedName = TopicName + ".created"
)

// OrderEventService is the contract for consumers of the "order" topic.
// Subscribers live in the shop backend (fulfilment, notifications); this
// service only publishes.
type OrderEventService interface {
	Subscribe(c context.Context) error
	OnOrderCreated(c context.Context, topic string, event OrderCreated) error
}

func DispatchEvent(c context.Context, reader io.Reader, service OrderEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case orderCreatedName:
		{
			event := OrderCreated{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderCreated(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event %s", envelope.EventTypeName))
	}
}

type OrderCreated struct {
	OrderUID      string
	ShopperUID    string
	ItemCount     int
	TotalPrice    int
	PaymentMethod string
	CreatedAt     time.Time
}

func (e OrderCreated) GetEventTypeName() string {
	return orderCreatedName
}

func (e OrderCreated) GetAggregateName() string {
	return e.OrderUID
}
