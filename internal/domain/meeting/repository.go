package meeting

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines meeting persistence operations
type Repository interface {
	Create(ctx context.Context, m *Meeting) error

	// GetByID returns ErrMeetingNotFound if no such meeting exists
	GetByID(ctx context.Context, id uuid.UUID) (*Meeting, error)

	// Update persists a status transition
	Update(ctx context.Context, m *Meeting) error

	// ListByParticipant returns meetings where the user is organizer or
	// attendee, sorted by start time ascending
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*Meeting, error)

	// ListPendingForAttendee returns pending meetings awaiting the user's response
	ListPendingForAttendee(ctx context.Context, userID uuid.UUID) ([]*Meeting, error)
}

// AvailabilityRepository defines availability slot persistence operations
type AvailabilityRepository interface {
	Create(ctx context.Context, slot *AvailabilitySlot) error

	// GetByID returns ErrSlotNotFound if no such slot exists
	GetByID(ctx context.Context, id uuid.UUID) (*AvailabilitySlot, error)

	Delete(ctx context.Context, id uuid.UUID) error

	ListByUser(ctx context.Context, userID uuid.UUID) ([]*AvailabilitySlot, error)
}

// ErrMeetingNotFound indicates a missing meeting
type ErrMeetingNotFound struct {
	MeetingID uuid.UUID
}

func (e ErrMeetingNotFound) Error() string {
	return "meeting not found: " + e.MeetingID.String()
}

// ErrSlotNotFound indicates a missing availability slot
type ErrSlotNotFound struct {
	SlotID uuid.UUID
}

func (e ErrSlotNotFound) Error() string {
	return "availability slot not found: " + e.SlotID.String()
}
