package pubsub

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"coffeeshop/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	attrEventID   = "event_id"
	attrCoffeeID  = "coffee_id"
	attrEventType = "event_type"
	attrEventName = "event_name"
	attrRequestID = "request_id"
)

// envelope is the broker-neutral form of a recommendation event. Every
// publisher sends the same JSON body and attribute set.
type envelope struct {
	body       []byte
	attributes map[string]string

	// orderingKey groups events of one coffee so brokers that support
	// ordering deliver them in commit order.
	orderingKey string

	eventID   string
	requestID string
	name      string
}

func newEnvelope(event *service.RecommendationEvent) (*envelope, error) {
	if event == nil {
		return nil, errors.New("recommendation event is nil")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode recommendation event")
	}

	attrs := map[string]string{
		attrEventID:   formatID(event.EventID),
		attrCoffeeID:  formatID(event.CoffeeID),
		attrEventType: event.Type,
		attrEventName: event.Name,
	}
	if event.RequestID != "" {
		attrs[attrRequestID] = event.RequestID
	}

	return &envelope{
		body:        body,
		attributes:  attrs,
		orderingKey: "coffee-" + attrs[attrCoffeeID],
		eventID:     attrs[attrEventID],
		requestID:   event.RequestID,
		name:        event.Name,
	}, nil
}

func (e *envelope) logAttrs(extra ...any) []any {
	return append([]any{
		slog.String(attrEventID, e.eventID),
		slog.String(attrCoffeeID, e.attributes[attrCoffeeID]),
	}, extra...)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
