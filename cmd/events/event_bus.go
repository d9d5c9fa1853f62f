package events

import (
	"sync"
)

// CommandEventBus carries UI-internal events between the command layer
// and the app (exit requests, shortcut presses). It is separate from the
// backend bus and supports unsubscribe and subscribe-once.
type CommandEventBus struct {
	subscribers map[string][]subscriberInfo
	mu          sync.RWMutex
	nextID      int
}

type subscriberInfo struct {
	id      int
	handler func(interface{})
	once    bool
}

func NewCommandEventBus() *CommandEventBus {
	return &CommandEventBus{
		subscribers: make(map[string][]subscriberInfo),
		nextID:      1,
	}
}

// Subscribe registers a handler for an event type and returns an
// unsubscribe function.
func (bus *CommandEventBus) Subscribe(eventType string, handler func(interface{})) func() {
	return bus.add(eventType, handler, false)
}

// SubscribeOnce registers a handler that is removed after its first call.
func (bus *CommandEventBus) SubscribeOnce(eventType string, handler func(interface{})) func() {
	return bus.add(eventType, handler, true)
}

func (bus *CommandEventBus) add(eventType string, handler func(interface{}), once bool) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++

	bus.subscribers[eventType] = append(bus.subscribers[eventType], subscriberInfo{
		id:      id,
		handler: handler,
		once:    once,
	})

	return func() {
		bus.mu.Lock()
		defer bus.mu.Unlock()
		bus.removeSubscriber(eventType, id)
	}
}

// Emit delivers an event to every subscriber of the type. Handlers run
// in their own goroutines.
func (bus *CommandEventBus) Emit(eventType string, event interface{}) {
	bus.mu.RLock()
	subscribers := make([]subscriberInfo, len(bus.subscribers[eventType]))
	copy(subscribers, bus.subscribers[eventType])
	bus.mu.RUnlock()

	var onceIDs []int
	for _, sub := range subscribers {
		if sub.once {
			onceIDs = append(onceIDs, sub.id)
		}
		go sub.handler(event)
	}

	if len(onceIDs) > 0 {
		bus.mu.Lock()
		for _, id := range onceIDs {
			bus.removeSubscriber(eventType, id)
		}
		bus.mu.Unlock()
	}
}

// Clear removes all subscribers.
func (bus *CommandEventBus) Clear() {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.subscribers = make(map[string][]subscriberInfo)
}

// removeSubscriber removes one subscriber by ID. Caller holds the lock.
func (bus *CommandEventBus) removeSubscriber(eventType string, id int) {
	subscribers := bus.subscribers[eventType]
	for i, sub := range subscribers {
		if sub.id == id {
			subscribers[i] = subscribers[len(subscribers)-1]
			bus.subscribers[eventType] = subscribers[:len(subscribers)-1]
			if len(bus.subscribers[eventType]) == 0 {
				delete(bus.subscribers, eventType)
			}
			break
		}
	}
}
