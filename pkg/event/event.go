// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Match event types
const (
	GameStarted    Type = "game_started"
	BallServed     Type = "ball_served"
	BallCollision  Type = "ball_collision"
	PointScored    Type = "point_scored"
	MatchWon       Type = "match_won"
	MatchRestarted Type = "match_restarted"
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

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish sends an event to all subscribed handlers synchronously, in
// subscription order. Handlers may subscribe or cancel while being called.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := append([]subscriber(nil), b.handlers[event.GetType()]...)
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// ServeEvent is published when the ball leaves the server
type ServeEvent struct {
	BaseEvent
	Player int
}

// NewServeEvent creates a new serve event
func NewServeEvent(source interface{}, player int) *ServeEvent {
	return &ServeEvent{
		BaseEvent: BaseEvent{EventType: BallServed, Source: source},
		Player:    player,
	}
}

// CollisionEvent describes a ball bounce. Player is 0 unless the ball hit a player.
type CollisionEvent struct {
	BaseEvent
	Kind   string
	Player int
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, kind string, player int) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{EventType: BallCollision, Source: source},
		Kind:      kind,
		Player:    player,
	}
}

// ScoreEvent carries the scoreboard after a point or at the end of a match
type ScoreEvent struct {
	BaseEvent
	Player       int
	Player1Score int
	Player2Score int
}

// NewScoreEvent creates a score event of the given type (PointScored or MatchWon)
func NewScoreEvent(eventType Type, source interface{}, player, player1Score, player2Score int) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent:    BaseEvent{EventType: eventType, Source: source},
		Player:       player,
		Player1Score: player1Score,
		Player2Score: player2Score,
	}
}
