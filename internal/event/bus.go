// Package event decouples core components from the presentation layer.
// Core code holds only a Bus and never a reference to any widget.
package event

import (
	"sync"

	"github.com/google/uuid"
)

// Event names crossing to the presentation layer.
const (
	ResetSearch      = "reset-search"      // popup went Hidden -> Shown; clear stale query text
	HotkeyRegistered = "hotkey-registered" // payload: human-readable combination label
	HotkeyFailed     = "hotkey-failed"     // payload: message telling the user to use the tray
)

// Handler receives an event's payload. Handlers run on the emitter's
// goroutine and must not block.
type Handler func(payload string)

type subscription struct {
	id      string
	handler Handler
}

// Bus is a minimal in-process pub/sub channel from core to presentation.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]subscription
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]subscription),
	}
}

// Subscribe registers a handler for an event name and returns a token for
// Unsubscribe.
func (b *Bus) Subscribe(name string, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New().String()
	b.subscribers[name] = append(b.subscribers[name], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a previously registered handler by token.
func (b *Bus) Unsubscribe(name, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscribers[name]
	for i, s := range subs {
		if s.id == id {
			b.subscribers[name] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Emit delivers payload to every subscriber of name, synchronously.
func (b *Bus) Emit(name, payload string) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subscribers[name]))
	copy(subs, b.subscribers[name])
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(payload)
	}
}
