package service

import (
	"context"
	"time"
)

// AuditEvent records a change an operator made to backend data through the console.
type AuditEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Action     string    `json:"action"` // create, update or delete
	Resource   string    `json:"resource"`
	RecordIDs  []string  `json:"record_ids,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing audit events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes one audit event
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
