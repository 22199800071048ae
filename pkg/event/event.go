// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	ShipDestroyed     Type = "ship_destroyed"
	BulletFired       Type = "bullet_fired"
	BulletExpired     Type = "bullet_expired"
	AsteroidDestroyed Type = "asteroid_destroyed"
	AsteroidSplit     Type = "asteroid_split"
	GameStarted       Type = "game_started"
	GameEnded         Type = "game_ended"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler
type Subscription struct {
	ID   uint64
	Type Type
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})
	return Subscription{ID: id, Type: eventType}
}

// Unsubscribe removes a handler. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[sub.Type]
	for i, r := range regs {
		if r.id == sub.ID {
			b.handlers[sub.Type] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers in subscription order
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := make([]registration, len(b.handlers[event.GetType()]))
	copy(regs, b.handlers[event.GetType()])
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// EntityEvent concerns a single entity
type EntityEvent struct {
	BaseEvent
	EntityID uint64
	Tick     uint64
}

// NewEntityEvent creates a new entity event
func NewEntityEvent(eventType Type, source interface{}, entityID, tick uint64) *EntityEvent {
	return &EntityEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityID: entityID,
		Tick:     tick,
	}
}

// ImpactEvent describes a bullet destroying an asteroid
type ImpactEvent struct {
	BaseEvent
	BulletID   uint64
	AsteroidID uint64
	Size       string
	Fragments  []uint64
	Tick       uint64
}

// NewImpactEvent creates a new impact event. Type is AsteroidSplit when
// fragments were spawned and AsteroidDestroyed otherwise.
func NewImpactEvent(source interface{}, bulletID, asteroidID uint64, size string, fragments []uint64, tick uint64) *ImpactEvent {
	eventType := AsteroidDestroyed
	if len(fragments) > 0 {
		eventType = AsteroidSplit
	}
	return &ImpactEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		BulletID:   bulletID,
		AsteroidID: asteroidID,
		Size:       size,
		Fragments:  fragments,
		Tick:       tick,
	}
}

// GameEvent marks a change in the game status
type GameEvent struct {
	BaseEvent
	Reason string
	Tick   uint64
}

// NewGameEvent creates a new game event
func NewGameEvent(eventType Type, source interface{}, reason string, tick uint64) *GameEvent {
	return &GameEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Reason: reason,
		Tick:   tick,
	}
}
