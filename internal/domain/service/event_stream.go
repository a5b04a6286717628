package service

import (
	"encoding/json"
	"strings"
	"time"
)

// Names of the lifecycle events the notification socket emits.
const (
	EventConnect      = "connect"
	EventConnectError = "connect_error"
	EventDisconnect   = "disconnect"
	EventReconnect    = "reconnect"

	// NotificationEventPrefix marks events that mean "notifications changed"
	NotificationEventPrefix = "notification"
)

// Event is one named push from the socket. Payload is informational only.
type Event struct {
	Name       string          `json:"name"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	ReceivedAt time.Time       `json:"receivedAt"`
}

// IsNotification reports whether the event signals a notification change.
func (e Event) IsNotification() bool {
	return strings.HasPrefix(e.Name, NotificationEventPrefix)
}

// IsConnect reports whether the event marks a (re)established connection.
func (e Event) IsConnect() bool {
	return e.Name == EventConnect || e.Name == EventReconnect
}

// EventHandler receives socket events. Handlers must not block.
type EventHandler func(Event)

// Subscription is a registered handler; Unsubscribe is safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

// EventStream is the long-lived push connection shared by every surface that needs live updates.
type EventStream interface {
	Subscribe(handler EventHandler) Subscription
}
