package usecase

import (
	"context"
	"log"
	"sync"

	"webpay_gateway/internal/domain/entities"
)

// Listener reacts to a payment lifecycle notification. Listeners on the
// callback kinds may attach a response with n.SetResponse.
type Listener func(ctx context.Context, n *entities.Notification)

// IEventDispatcher delivers notifications to listeners.

type IEventDispatcher interface {
	Dispatch(ctx context.Context, n *entities.Notification)
}

// EventDispatcher runs listeners synchronously in registration order. Once a
// listener attaches a response the remaining listeners are skipped.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners map[entities.NotificationKind][]Listener
}

var _ IEventDispatcher = (*EventDispatcher)(nil)

func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{listeners: map[entities.NotificationKind][]Listener{}}
}

func (d *EventDispatcher) Subscribe(kind entities.NotificationKind, l Listener) {
	if l == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[kind] = append(d.listeners[kind], l)
}

func (d *EventDispatcher) HasListeners(kind entities.NotificationKind) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[kind]) > 0
}

func (d *EventDispatcher) Dispatch(ctx context.Context, n *entities.Notification) {
	if n == nil {
		return
	}
	d.mu.RLock()
	listeners := append([]Listener(nil), d.listeners[n.Kind]...)
	d.mu.RUnlock()

	for i, l := range listeners {
		l(ctx, n)
		if n.HasResponse() {
			if i < len(listeners)-1 {
				log.Printf("[payment][events] response attached kind=%s skipped_listeners=%d", n.Kind, len(listeners)-1-i)
			}
			return
		}
	}
}

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(context.Context, *entities.Notification) {}
