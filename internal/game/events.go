package game

import (
	"fmt"
	"strings"
	"time"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeFallerSpawned  EventType = "faller_spawned"
	EventTypeFallerLanded   EventType = "faller_landed"
	EventTypeFallerFrozen   EventType = "faller_frozen"
	EventTypeMatchesCleared EventType = "matches_cleared"
	EventTypeVirusPlaced    EventType = "virus_placed"
	EventTypeLevelCleared   EventType = "level_cleared"
	EventTypeGameOver       EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything observable that happens to a GameState
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// FallerSpawnedEvent is published when a new faller enters the field
type FallerSpawnedEvent struct {
	Faller    Faller
	timestamp time.Time
}

func (e FallerSpawnedEvent) EventType() EventType { return EventTypeFallerSpawned }
func (e FallerSpawnedEvent) Timestamp() time.Time { return e.timestamp }

// NewFallerSpawnedEvent creates a new spawn event
func NewFallerSpawnedEvent(f Faller) FallerSpawnedEvent {
	return FallerSpawnedEvent{Faller: f, timestamp: time.Now()}
}

// FallerLandedEvent is published the first time a faller comes to rest
type FallerLandedEvent struct {
	Faller    Faller
	timestamp time.Time
}

func (e FallerLandedEvent) EventType() EventType { return EventTypeFallerLanded }
func (e FallerLandedEvent) Timestamp() time.Time { return e.timestamp }

// NewFallerLandedEvent creates a new landing event
func NewFallerLandedEvent(f Faller) FallerLandedEvent {
	return FallerLandedEvent{Faller: f, timestamp: time.Now()}
}

// FallerFrozenEvent is published when a landed faller becomes part of the grid
type FallerFrozenEvent struct {
	Faller    Faller
	timestamp time.Time
}

func (e FallerFrozenEvent) EventType() EventType { return EventTypeFallerFrozen }
func (e FallerFrozenEvent) Timestamp() time.Time { return e.timestamp }

// NewFallerFrozenEvent creates a new freeze event
func NewFallerFrozenEvent(f Faller) FallerFrozenEvent {
	return FallerFrozenEvent{Faller: f, timestamp: time.Now()}
}

// MatchesClearedEvent is published for every clear step of a cascade. Step
// starts at 1 for the first clear after a freeze or settle and increments for
// each clear exposed by the gravity that follows.
type MatchesClearedEvent struct {
	Cells          []Position
	Step           int
	VirusesCleared int
	timestamp      time.Time
}

func (e MatchesClearedEvent) EventType() EventType { return EventTypeMatchesCleared }
func (e MatchesClearedEvent) Timestamp() time.Time { return e.timestamp }

// NewMatchesClearedEvent creates a new clear event
func NewMatchesClearedEvent(cells []Position, step, virusesCleared int) MatchesClearedEvent {
	c := make([]Position, len(cells))
	copy(c, cells)
	return MatchesClearedEvent{
		Cells:          c,
		Step:           step,
		VirusesCleared: virusesCleared,
		timestamp:      time.Now(),
	}
}

// VirusPlacedEvent is published when a virus is added to the grid
type VirusPlacedEvent struct {
	Pos       Position
	Color     Color
	timestamp time.Time
}

func (e VirusPlacedEvent) EventType() EventType { return EventTypeVirusPlaced }
func (e VirusPlacedEvent) Timestamp() time.Time { return e.timestamp }

// NewVirusPlacedEvent creates a new virus placement event
func NewVirusPlacedEvent(pos Position, color Color) VirusPlacedEvent {
	return VirusPlacedEvent{Pos: pos, Color: color, timestamp: time.Now()}
}

// LevelClearedEvent is published when a clear removes the last virus
type LevelClearedEvent struct {
	timestamp time.Time
}

func (e LevelClearedEvent) EventType() EventType { return EventTypeLevelCleared }
func (e LevelClearedEvent) Timestamp() time.Time { return e.timestamp }

// NewLevelClearedEvent creates a new level cleared event
func NewLevelClearedEvent() LevelClearedEvent {
	return LevelClearedEvent{timestamp: time.Now()}
}

// GameOverEvent is published when a spawn is blocked
type GameOverEvent struct {
	Blocked   []Position
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// NewGameOverEvent creates a new game over event
func NewGameOverEvent(blocked []Position) GameOverEvent {
	return GameOverEvent{Blocked: blocked, timestamp: time.Now()}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory, synchronous event bus
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. Function subscribers are not comparable
// and cannot be removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(EventSubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(EventSubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers in subscription order
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// EventFormatter turns events into one-line log entries for front ends
type EventFormatter struct{}

// NewEventFormatter creates a new event formatter
func NewEventFormatter() *EventFormatter {
	return &EventFormatter{}
}

// Format returns a human-readable line for the event
func (ef *EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case FallerSpawnedEvent:
		return fmt.Sprintf("Faller %c%c spawned at %s", e.Faller.Primary.Color.Letter(), e.Faller.Secondary.Color.Letter(), e.Faller.Primary.Pos)
	case FallerLandedEvent:
		return fmt.Sprintf("Faller landed at %s", e.Faller.Primary.Pos)
	case FallerFrozenEvent:
		return fmt.Sprintf("Faller frozen at %s %s", e.Faller.Primary.Pos, e.Faller.Secondary.Pos)
	case MatchesClearedEvent:
		return ef.formatMatches(e)
	case VirusPlacedEvent:
		return fmt.Sprintf("Virus %c placed at %s", e.Color.Letter()+('a'-'A'), e.Pos)
	case LevelClearedEvent:
		return "*** LEVEL CLEARED ***"
	case GameOverEvent:
		return "*** GAME OVER ***"
	default:
		return event.EventType().String()
	}
}

func (ef *EventFormatter) formatMatches(e MatchesClearedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cleared %d cells", len(e.Cells))
	if e.VirusesCleared > 0 {
		fmt.Fprintf(&b, " (%d viruses)", e.VirusesCleared)
	}
	if e.Step > 1 {
		fmt.Fprintf(&b, ", cascade x%d", e.Step)
	}
	return b.String()
}
