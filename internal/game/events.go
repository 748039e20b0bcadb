package game

type EventType int

const (
	EventFoodEaten EventType = iota
	EventSegmentGrown
	EventGameOver
)

// GameOver reasons, carried in Event.Data.
const (
	OverWall = iota
	OverSelf
	OverBoardFull
)

type Event struct {
	Type EventType
	Cell Cell
	Data int // generic payload (e.g. game-over reason)
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
