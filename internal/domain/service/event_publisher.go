package service

import (
	"context"
	"time"
)

// AccountEvent represents an account lifecycle event published for async
// consumers (audit trail, welcome mail workers).
type AccountEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`                 // e.g. "account_registered"
	AccountID  string    `json:"account_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AccountEventRegistered is the event type emitted after a successful signup.
const AccountEventRegistered = "account_registered"

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
