package orderevents

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/tailorshop/lib/myerrors"
	"github.com/MarcGrol/tailorshop/lib/myevents"
	"github.com/MarcGrol/tailorshop/lib/mytime"
)

func TestDispatchEvent(t *testing.T) {
	t.Run("order created is dispatched", func(t *testing.T) {
		// given
		event := OrderCreated{
			OrderUID:      "order-1",
			ShopperUID:    "shopper-1",
			ItemCount:     2,
			TotalPrice:    5000000,
			PaymentMethod: "COD",
			CreatedAt:     mytime.ExampleTime,
		}
		handler := &recordingEventService{}

		// when
		err := DispatchEvent(context.TODO(), pushRequest(t, event.GetEventTypeName(), event), handler)

		// then
		assert.NoError(t, err)
		assert.Equal(t, event, handler.received)
	})

	t.Run("unknown event type", func(t *testing.T) {
		// when
		err := DispatchEvent(context.TODO(), pushRequest(t, "order.shipped", struct{}{}), &recordingEventService{})

		// then
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotImplemented, myerrors.GetHTTPStatus(err))
	})

	t.Run("malformed envelope", func(t *testing.T) {
		// when
		err := DispatchEvent(context.TODO(), strings.NewReader("not json"), &recordingEventService{})

		// then
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, myerrors.GetHTTPStatus(err))
	})
}

type recordingEventService struct {
	received OrderCreated
}

func (s *recordingEventService) Subscribe(c context.Context) error {
	return nil
}

func (s *recordingEventService) OnOrderCreated(c context.Context, topic string, event OrderCreated) error {
	s.received = event
	return nil
}

func pushRequest(t *testing.T, eventTypeName string, event any) *bytes.Reader {
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	envelope, err := json.Marshal(myevents.EventEnvelope{
		Topic:         TopicName,
		EventTypeName: eventTypeName,
		EventPayload:  string(payload),
	})
	assert.NoError(t, err)

	push, err := json.Marshal(myevents.PushRequest{
		Message: myevents.PushMessage{
			Data: envelope,
		},
	})
	assert.NoError(t, err)

	return bytes.NewReader(push)
}
