package world

// EventKind identifies what happened during a frame.
type EventKind uint8

const (
	EventCollected EventKind = iota
	EventDamage
	EventGameOver
)

// String returns a short name used in log fields.
func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "collected"
	case EventDamage:
		return "damage"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event reports a state change produced by a frame.
type Event struct {
	Kind     EventKind
	Category Category

	Points int // score gained by a collection

	Damage   float32 // rolled damage of a ground hit
	Absorbed float32 // part of Damage taken by the shield
	Taken    float32 // part of Damage taken by HP
}
