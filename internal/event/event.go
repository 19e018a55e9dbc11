package event

import (
	"time"

	"github.com/google/uuid"
)

// Event types double as Kafka topic names.
const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
	StockUpdated   = "stock.updated"
	SaleRecorded   = "sale.recorded"
)

// Event is a change notification emitted after a write has committed.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Key        string      `json:"key"`
	Payload    interface{} `json:"payload"`
	Message    string      `json:"message,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func New(eventType, key string, payload interface{}, message string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Key:        key,
		Payload:    payload,
		Message:    message,
		OccurredAt: time.Now(),
	}
}

// Notifier delivers events. Implementations must not block the caller for
// long and must not report failures back; a failed notification never fails
// the request that caused it.
type Notifier interface {
	Notify(e Event)
}

// Fanout delivers each event to every notifier in order.
type Fanout []Notifier

func (f Fanout) Notify(e Event) {
	for _, n := range f {
		n.Notify(e)
	}
}

// Nop drops every event.
type Nop struct{}

func (Nop) Notify(Event) {}
