package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	first := &recorder{}
	second := &recorder{}
	var seen []EventType
	bus.Subscribe(first)
	bus.Subscribe(EventSubscriberFunc(func(e GameEvent) { seen = append(seen, e.EventType()) }))
	bus.Subscribe(second)

	bus.Publish(NewGameOverEvent(nil))
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
	assert.Equal(t, []EventType{EventTypeGameOver}, seen)

	bus.Unsubscribe(first)
	bus.Publish(NewGameOverEvent(nil))
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 2)
	assert.Len(t, seen, 2)
}

func TestEngineEventSequence(t *testing.T) {
	rec := &recorder{}
	bus := NewEventBus()
	bus.Subscribe(rec)

	g, err := New(4, 4, ConfigContents, []string{"    ", "    ", "    ", "yy  "}, WithEventBus(bus))
	require.NoError(t, err)

	require.True(t, g.CreateFaller(Yellow, Yellow))
	require.True(t, g.MoveRight())
	g.Tick()
	g.Tick()
	g.Tick()

	var types []EventType
	for _, e := range rec.events {
		types = append(types, e.EventType())
	}
	assert.Equal(t, []EventType{
		EventTypeFallerSpawned,
		EventTypeFallerLanded,
		EventTypeFallerFrozen,
		EventTypeMatchesCleared,
		EventTypeLevelCleared,
	}, types)
	assert.False(t, g.HasViruses())
}

func TestEventFormatter(t *testing.T) {
	ef := NewEventFormatter()
	f := Faller{
		Primary:   Segment{Pos: Position{Row: 1, Col: 2}, Color: Red},
		Secondary: Segment{Pos: Position{Row: 1, Col: 3}, Color: Blue},
	}

	tests := []struct {
		event    GameEvent
		expected string
	}{
		{NewFallerSpawnedEvent(f), "Faller RB spawned at (1,2)"},
		{NewFallerLandedEvent(f), "Faller landed at (1,2)"},
		{NewFallerFrozenEvent(f), "Faller frozen at (1,2) (1,3)"},
		{NewMatchesClearedEvent(make([]Position, 4), 1, 0), "Cleared 4 cells"},
		{NewMatchesClearedEvent(make([]Position, 5), 2, 1), "Cleared 5 cells (1 viruses), cascade x2"},
		{NewVirusPlacedEvent(Position{Row: 7, Col: 0}, Red), "Virus r placed at (7,0)"},
		{NewLevelClearedEvent(), "*** LEVEL CLEARED ***"},
		{NewGameOverEvent(nil), "*** GAME OVER ***"},
	}
	for _, tt := range tests {
		t.Run(tt.event.EventType().String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, ef.Format(tt.event))
		})
	}
}
