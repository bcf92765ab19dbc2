package session

import "time"

// EventType identifies what changed in the controller.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventCheckin     EventType = "checkin"
	EventComplete    EventType = "complete"
	EventAbandoned   EventType = "abandoned"
	EventReset       EventType = "reset"
	EventPreset      EventType = "preset"
	EventIntent      EventType = "intent"
)

// Event is delivered to subscribers after every state change.
type Event struct {
	At       time.Time
	Type     EventType
	Snapshot Snapshot
}
