package cart

import "sync"

// Action labels the mutation that produced a change event.
type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionRemove Action = "remove"
	ActionClear  Action = "clear"
)

// Event describes one committed cart mutation. Events are broadcast only
// after the new list has been persisted, so listeners always observe
// already-committed state.
type Event struct {
	Action    Action
	SessionID string
	Item      *LineItem
}

// Listener receives cart change events.
type Listener func(Event)

// Bus fans cart change events out to subscribed listeners. Subscription is
// process-local; cross-process consistency is out of scope.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewBus returns an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a listener for all future cart events.
func (b *Bus) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Publish delivers the event to every listener synchronously, in
// subscription order.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	listeners := make([]Listener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(event)
	}
}
