package game

import (
	"time"

	"github.com/coder/quartz"

	"github.com/cardsmith/blackjack/internal/deck"
)

// EventType identifies a game domain event
type EventType string

const (
	EventTypeRoundStart EventType = "round_start"
	EventTypePlayerMove EventType = "player_move"
	EventTypeDealerDone EventType = "dealer_done"
	EventTypeRoundEnd   EventType = "round_end"
)

func (et EventType) String() string {
	return string(et)
}

// Event is anything that happens during a game
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published after the deal completes. DealerHand still
// has its hole card hidden.
type RoundStartEvent struct {
	Round      int
	DealerHand *deck.Hand
	timestamp  time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerMoveEvent is published for every applied player move
type PlayerMoveEvent struct {
	PlayerID  int
	Move      Move
	Hand      *deck.Hand
	Busted    bool
	timestamp time.Time
}

func (e PlayerMoveEvent) EventType() EventType { return EventTypePlayerMove }
func (e PlayerMoveEvent) Timestamp() time.Time { return e.timestamp }

// DealerDoneEvent is published once the dealer's hand is final
type DealerDoneEvent struct {
	Hand      *deck.Hand
	Busted    bool
	timestamp time.Time
}

func (e DealerDoneEvent) EventType() EventType { return EventTypeDealerDone }
func (e DealerDoneEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent carries the settled outcomes for a round
type RoundEndEvent struct {
	Round     int
	Outcomes  []Outcome
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// EventBus delivers events to subscribers synchronously, in subscription
// order. The game core is single-threaded, so no locking is needed; the
// clock is injectable so tests control timestamps.
type EventBus struct {
	clock       quartz.Clock
	subscribers map[EventType][]func(Event)
	all         []func(Event)
}

// NewEventBus creates a bus using the given clock, or the real clock when
// nil.
func NewEventBus(clock quartz.Clock) *EventBus {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &EventBus{
		clock:       clock,
		subscribers: make(map[EventType][]func(Event)),
	}
}

// Subscribe registers a handler for one event type
func (b *EventBus) Subscribe(et EventType, fn func(Event)) {
	b.subscribers[et] = append(b.subscribers[et], fn)
}

// SubscribeAll registers a handler for every event
func (b *EventBus) SubscribeAll(fn func(Event)) {
	b.all = append(b.all, fn)
}

func (b *EventBus) now() time.Time {
	return b.clock.Now()
}

func (b *EventBus) publish(e Event) {
	for _, fn := range b.subscribers[e.EventType()] {
		fn(e)
	}
	for _, fn := range b.all {
		fn(e)
	}
}
