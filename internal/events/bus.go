// Package events provides a minimal in-process publish/subscribe bus.
// The settings layer publishes the key of every changed setting through
// one of these; any component interested in configuration changes
// subscribes to it.
package events

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Handler is a callback invoked for every published event.
type Handler[T any] func(T)

// Bus is a thread-safe, in-process publish/subscribe event bus.
type Bus[T any] struct {
	mu   sync.RWMutex
	subs map[string]Handler[T]
}

// NewBus creates a ready-to-use event bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{subs: make(map[string]Handler[T])}
}

// Subscribe registers handler and returns its subscription handle.
// Each call creates an independent registration: subscribing the same
// function twice means it is invoked twice per event. The owner must call
// Unsubscribe on the handle when it is done listening.
func (b *Bus[T]) Subscribe(handler Handler[T]) *Subscription[T] {
	id := uuid.NewString()
	b.mu.Lock()
	b.subs[id] = handler
	b.mu.Unlock()
	return &Subscription[T]{id: id, bus: b}
}

// Publish sends an event to every current subscriber.
// Handlers are called synchronously in the caller's goroutine, in no
// particular order. A panic in one handler is recovered and logged and
// does not prevent delivery to the remaining handlers.
func (b *Bus[T]) Publish(e T) {
	b.mu.RLock()
	handlers := make([]Handler[T], 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("events: subscriber panic: %v", r)
				}
			}()
			h(e)
		}()
	}
}

// Subscription ties one registered handler to its bus.
type Subscription[T any] struct {
	id  string
	bus *Bus[T]
}

// Unsubscribe removes the registration; no further events are delivered
// to its handler. Safe to call more than once, and a no-op on a handle
// that was never registered.
func (s *Subscription[T]) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.mu.Lock()
	delete(s.bus.subs, s.id)
	s.bus.mu.Unlock()
}
