package meeting

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrEmptyTitle      = errors.New("meeting title cannot be empty")
	ErrInvalidDuration = errors.New("meeting duration must be positive")
	ErrSelfMeeting     = errors.New("organizer and attendee must differ")
	ErrNotAttendee     = errors.New("only the attendee may respond to a meeting request")
	ErrNotPending      = errors.New("meeting request has already been resolved")
	ErrInvalidDecision = errors.New("decision must be accept or decline")
)

// Status defines the meeting request lifecycle
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusConfirmed Status = "confirmed"
)

// Decision is the attendee's answer to a pending request
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

// Meeting is a scheduling proposal between an organizer and an attendee.
//
// Lifecycle: pending -> confirmed (attendee accepts) or pending -> declined
// (attendee declines). Confirmed and declined are terminal.
type Meeting struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	AttendeeID  uuid.UUID `json:"attendee_id"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewMeeting creates a pending meeting request. The end time is computed from
// the start time and duration, so EndTime > StartTime holds by construction.
func NewMeeting(organizerID, attendeeID uuid.UUID, title, description string, startTime time.Time, duration time.Duration) (*Meeting, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if organizerID == attendeeID {
		return nil, ErrSelfMeeting
	}

	return &Meeting{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		StartTime:   startTime,
		EndTime:     startTime.Add(duration),
		OrganizerID: organizerID,
		AttendeeID:  attendeeID,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}, nil
}

// Respond applies the attendee's decision to a pending request. It fails with
// ErrNotAttendee when the responder is not the attendee and with ErrNotPending
// when the meeting is already in a terminal state; the meeting is left
// unchanged in both cases.
func (m *Meeting) Respond(responderID uuid.UUID, decision Decision) error {
	if responderID != m.AttendeeID {
		return ErrNotAttendee
	}
	if m.Status != StatusPending {
		return ErrNotPending
	}

	switch decision {
	case DecisionAccept:
		m.Status = StatusConfirmed
	case DecisionDecline:
		m.Status = StatusDeclined
	default:
		return ErrInvalidDecision
	}
	return nil
}

// Involves reports whether the user is organizer or attendee
func (m *Meeting) Involves(userID uuid.UUID) bool {
	return m.OrganizerID == userID || m.AttendeeID == userID
}

// IsPendingFor reports whether the meeting awaits a response from the user
func (m *Meeting) IsPendingFor(userID uuid.UUID) bool {
	return m.Status == StatusPending && m.AttendeeID == userID
}
