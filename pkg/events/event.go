package events

import "time"

// Event is the contract for audit/system events published to the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "RECORD_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a ready-made implementation for simple events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewAdminEvent builds an audit event for an administrative mutation.
func NewAdminEvent(eventType, actor, target string, details map[string]interface{}) Event {
	data := map[string]interface{}{
		"actor":  actor,
		"target": target,
	}
	for k, v := range details {
		data[k] = v
	}
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
