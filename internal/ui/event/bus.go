package event

import "sync"

// Handler receives events.
type Handler func(Event)

type subscription struct {
	id uint64
	fn Handler
}

// Bus dispatches events synchronously on the caller's goroutine.
// Handlers run in registration order. A handler may emit further events;
// they are dispatched before the outer Emit returns.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	byType map[Type][]subscription
	all    []subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{byType: make(map[Type][]subscription)}
}

// Subscribe registers fn for events of type t and returns a function that
// removes the registration.
func (b *Bus) Subscribe(t Type, fn Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.byType[t] = append(b.byType[t], subscription{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.byType[t] = remove(b.byType[t], id)
	}
}

// SubscribeAll registers fn for every event type.
func (b *Bus) SubscribeAll(fn Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.all = append(b.all, subscription{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = remove(b.all, id)
	}
}

// Emit delivers ev to type subscribers, then to catch-all subscribers.
// A nil bus drops the event.
func (b *Bus) Emit(ev Event) {
	if b == nil {
		return
	}
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.byType[ev.Type])+len(b.all))
	for _, s := range b.byType[ev.Type] {
		handlers = append(handlers, s.fn)
	}
	for _, s := range b.all {
		handlers = append(handlers, s.fn)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// HandlerCount returns the number of subscribers for t, excluding catch-all ones.
func (b *Bus) HandlerCount(t Type) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.byType[t])
}

func remove(subs []subscription, id uint64) []subscription {
	out := subs[:0:0]
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}
