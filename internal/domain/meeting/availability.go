package meeting

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTimeRange = errors.New("slot end time must be after start time")
	ErrInvalidClock     = errors.New("slot times must be in HH:MM format")
)

const clockLayout = "15:04"

// AvailabilitySlot is a declarative record of a user's recurring free time.
// Slots are advisory only: proposing a meeting never cross-checks them.
type AvailabilitySlot struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	DayOfWeek   int       `json:"day_of_week"` // 0-6 (Sunday-Saturday)
	StartTime   string    `json:"start_time"`  // HH:MM
	EndTime     string    `json:"end_time"`    // HH:MM
	IsRecurring bool      `json:"is_recurring"`
}

// NewAvailabilitySlot validates and creates an availability slot
func NewAvailabilitySlot(userID uuid.UUID, dayOfWeek int, startTime, endTime string, isRecurring bool) (*AvailabilitySlot, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}

	start, err := time.Parse(clockLayout, startTime)
	if err != nil {
		return nil, ErrInvalidClock
	}
	end, err := time.Parse(clockLayout, endTime)
	if err != nil {
		return nil, ErrInvalidClock
	}
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	return &AvailabilitySlot{
		ID:          uuid.New(),
		UserID:      userID,
		DayOfWeek:   dayOfWeek,
		StartTime:   startTime,
		EndTime:     endTime,
		IsRecurring: isRecurring,
	}, nil
}
