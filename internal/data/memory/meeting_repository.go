package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/meeting"
)

// MeetingRepository implements meeting.Repository over a process-local map
type MeetingRepository struct {
	mu       sync.RWMutex
	meetings map[uuid.UUID]meeting.Meeting
}

// NewMeetingRepository creates an empty meeting store
func NewMeetingRepository() *MeetingRepository {
	return &MeetingRepository{
		meetings: make(map[uuid.UUID]meeting.Meeting),
	}
}

// Create stores a new meeting
func (r *MeetingRepository) Create(_ context.Context, m *meeting.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.meetings[m.ID] = *m
	return nil
}

// GetByID retrieves a meeting by id
func (r *MeetingRepository) GetByID(_ context.Context, id uuid.UUID) (*meeting.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.meetings[id]
	if !ok {
		return nil, meeting.ErrMeetingNotFound{MeetingID: id}
	}
	copied := m
	return &copied, nil
}

// Update persists a status transition. Only a pending meeting may be
// rewritten: a stored terminal status stays terminal even when two responses
// race past the in-entity check.
func (r *MeetingRepository) Update(_ context.Context, m *meeting.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.meetings[m.ID]
	if !ok {
		return meeting.ErrMeetingNotFound{MeetingID: m.ID}
	}
	if stored.Status != meeting.StatusPending {
		return meeting.ErrNotPending
	}
	r.meetings[m.ID] = *m
	return nil
}

// ListByParticipant returns meetings where the user is organizer or attendee,
// sorted by start time ascending
func (r *MeetingRepository) ListByParticipant(_ context.Context, userID uuid.UUID) ([]*meeting.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*meeting.Meeting
	for _, m := range r.meetings {
		if m.Involves(userID) {
			copied := m
			matched = append(matched, &copied)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].StartTime.Before(matched[j].StartTime)
	})
	return matched, nil
}

// ListPendingForAttendee returns the user's actionable inbox: pending
// meetings awaiting their response, oldest request first
func (r *MeetingRepository) ListPendingForAttendee(_ context.Context, userID uuid.UUID) ([]*meeting.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*meeting.Meeting
	for _, m := range r.meetings {
		if m.IsPendingFor(userID) {
			copied := m
			matched = append(matched, &copied)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}
