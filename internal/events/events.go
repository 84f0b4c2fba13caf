// Package events defines the platform events emitted by the engines after a
// committed operation, and the dispatcher that publishes them off the request
// path. Event publishing is strictly best-effort: a failed publish is logged
// and never rolls back or delays the operation that produced it.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies the event payload
type Kind string

const (
	KindTransactionCompleted Kind = "transaction.completed"
	KindMeetingProposed      Kind = "meeting.proposed"
	KindMeetingResolved      Kind = "meeting.resolved"
)

// Event is the envelope written to the platform events topic
type Event struct {
	ID         uuid.UUID   `json:"id"`
	Kind       Kind        `json:"kind"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// TransactionCompleted is emitted after every committed ledger operation
type TransactionCompleted struct {
	TransactionID uuid.UUID  `json:"transaction_id"`
	Type          string     `json:"type"`
	Amount        int64      `json:"amount"`
	SenderID      uuid.UUID  `json:"sender_id"`
	ReceiverID    *uuid.UUID `json:"receiver_id,omitempty"`
}

// MeetingProposed is emitted when an organizer creates a meeting request
type MeetingProposed struct {
	MeetingID   uuid.UUID `json:"meeting_id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	AttendeeID  uuid.UUID `json:"attendee_id"`
	StartTime   time.Time `json:"start_time"`
}

// MeetingResolved is emitted when the attendee accepts or declines
type MeetingResolved struct {
	MeetingID  uuid.UUID `json:"meeting_id"`
	AttendeeID uuid.UUID `json:"attendee_id"`
	Status     string    `json:"status"`
}

// New wraps a payload in an event envelope
func New(kind Kind, payload interface{}) *Event {
	return &Event{
		ID:         uuid.New(),
		Kind:       kind,
		OccurredAt: time.Now(),
		Payload:    payload,
	}
}
