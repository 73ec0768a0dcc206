package events

import (
	"sync"

	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type Event string

const (
	EventDeviceCreated         Event = "DeviceCreated"
	EventDeviceUpdated         Event = "DeviceUpdated"
	EventUpdateCreated         Event = "UpdateCreated"
	EventVerificationConfirmed Event = "VerificationConfirmed"
)

// Handler receives the id carried by the event: the entity id for the
// creation/update events, the update id for VerificationConfirmed.
type Handler func(id int)

// Bus is a synchronous in-process notification channel. Publish fans out
// to every registered handler on the calling goroutine; there is no
// queueing, retry, or cross-process delivery.
type Bus struct {
	mu       sync.RWMutex
	log      *logger.Logger
	handlers map[Event][]Handler
}

func NewBus(baseLog *logger.Logger) *Bus {
	return &Bus{
		log:      baseLog.With("component", "EventBus"),
		handlers: make(map[Event][]Handler),
	}
}

func (b *Bus) Subscribe(event Event, handler Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], handler)
}

func (b *Bus) Publish(event Event, id int) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event]))
	copy(handlers, b.handlers[event])
	b.mu.RUnlock()

	b.log.Debug("Publishing event", "event", string(event), "id", id)
	for _, handler := range handlers {
		handler(id)
	}
}
