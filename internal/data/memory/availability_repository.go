package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/meeting"
)

// AvailabilityRepository implements meeting.AvailabilityRepository over a
// process-local map
type AvailabilityRepository struct {
	mu    sync.RWMutex
	slots map[uuid.UUID]meeting.AvailabilitySlot
}

// NewAvailabilityRepository creates an empty availability store
func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{
		slots: make(map[uuid.UUID]meeting.AvailabilitySlot),
	}
}

// Create stores a new availability slot
func (r *AvailabilityRepository) Create(_ context.Context, slot *meeting.AvailabilitySlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[slot.ID] = *slot
	return nil
}

// GetByID retrieves a slot by id
func (r *AvailabilityRepository) GetByID(_ context.Context, id uuid.UUID) (*meeting.AvailabilitySlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.slots[id]
	if !ok {
		return nil, meeting.ErrSlotNotFound{SlotID: id}
	}
	copied := slot
	return &copied, nil
}

// Delete removes a slot
func (r *AvailabilityRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.slots[id]; !ok {
		return meeting.ErrSlotNotFound{SlotID: id}
	}
	delete(r.slots, id)
	return nil
}

// ListByUser returns the user's slots ordered by day of week, then start time
func (r *AvailabilityRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*meeting.AvailabilitySlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*meeting.AvailabilitySlot
	for _, slot := range r.slots {
		if slot.UserID == userID {
			copied := slot
			matched = append(matched, &copied)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].DayOfWeek != matched[j].DayOfWeek {
			return matched[i].DayOfWeek < matched[j].DayOfWeek
		}
		return matched[i].StartTime < matched[j].StartTime
	})
	return matched, nil
}
