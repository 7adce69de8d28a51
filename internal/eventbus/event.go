package eventbus

import "time"

// Event is a delivery lifecycle event published by the notifiers.
type Event struct {
	Type      string            `json:"type"`
	Channel   string            `json:"channel"`
	Timestamp time.Time         `json:"timestamp"`
	Payload   map[string]string `json:"payload"`
}

// Listener handles an event. Listeners run on bus workers, never on the
// request goroutine.
type Listener func(Event)
