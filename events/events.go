package events

import (
	"context"
	"sync"

	"killfeed/models"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeWalletChange EventType = "wallet_change"
	EventTypeKillRecorded EventType = "kill_recorded"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// WalletChangeEvent represents a settled wallet change
type WalletChangeEvent struct {
	GuildID      int64
	DiscordID    int64
	ChangeAmount int64
	NewBalance   int64
	EventType    models.EventType
}

func (e WalletChangeEvent) Type() EventType {
	return EventTypeWalletChange
}

// KillRecordedEvent represents an ingested kill feed entry
type KillRecordedEvent struct {
	GuildID   int64
	ServerID  string
	Killer    string
	Victim    string
	Weapon    string
	Distance  float64
	IsSuicide bool
}

func (e KillRecordedEvent) Type() EventType {
	return EventTypeKillRecorded
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Publish dispatches an event to all registered handlers. Handlers run
// asynchronously so slow consumers never block the publisher.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Events outlive the request that produced them
	ctx := context.Background()

	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}
