package bus

import "time"

// Event is a message published on the bus. Kind is dot separated
// ("shortcut.event_goToInbox", "scope.destroyed").
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}
