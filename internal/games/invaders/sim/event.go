package sim

// EventType is the kind of lifecycle notice.
type EventType int

const (
	EventSpawned EventType = iota
	EventDespawned
)

// DespawnReason explains why an entity left the state.
type DespawnReason int

const (
	ReasonNone      DespawnReason = iota
	ReasonOffscreen               // Left the playfield vertically
	ReasonHit                     // Destroyed in a collision
)

// String returns a human-readable name for the reason.
func (r DespawnReason) String() string {
	switch r {
	case ReasonOffscreen:
		return "offscreen"
	case ReasonHit:
		return "hit"
	default:
		return "none"
	}
}

// Event tells the presentation layer that an entity appeared or went away.
// Every Spawned event is followed by exactly one Despawned event for the
// same ID if the entity is removed.
type Event struct {
	Type   EventType
	ID     EntityID
	Kind   EntityKind
	X, Y   float64
	Row    int
	Reason DespawnReason
}
