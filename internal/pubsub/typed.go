package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/beaconhouse/beacon/internal/topicmgr"
)

// Event names a topic whose payloads are JSON-encoded values of T.
type Event[T any] struct {
	name string
}

// NewEvent defines a typed event on topic name and registers it with the
// default topic manager. It panics on an invalid or conflicting definition,
// so events are meant to be package-level variables.
func NewEvent[T any](name, description string) Event[T] {
	var zero T
	topicmgr.Default().MustRegister(topicmgr.Define(name, description, fmt.Sprintf("%T", zero)))
	return Event[T]{name: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.name
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.Name(), err)
	}
	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		Payload: data,
	})
}

// Subscribe decodes every message on the event's topic into T before calling handler.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s: %w", event.Name(), err)
		}
		return handler(ctx, payload)
	})
}
