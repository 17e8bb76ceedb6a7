package producers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/parthdave/couriersim/internal/models"
)

// EventProducer publishes order lifecycle events for downstream consumers.
type EventProducer interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// OrderEvent is the wire form of an order lifecycle change.
type OrderEvent struct {
	EventType string       `json:"event_type"` // order_created, order_status_changed
	Order     models.Order `json:"order"`
	Timestamp time.Time    `json:"timestamp"`
}

// EncodeOrderEvent marshals an event for publishing.
func EncodeOrderEvent(eventType string, order models.Order) ([]byte, error) {
	raw, err := json.Marshal(OrderEvent{
		EventType: eventType,
		Order:     order,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode order event: %w", err)
	}
	return raw, nil
}

// NoopProducer drops every message. Used when Kafka is disabled.
type NoopProducer struct{}

func (NoopProducer) WriteMessage(topic string, msg []byte) error { return nil }
func (NoopProducer) Close() error                                { return nil }
