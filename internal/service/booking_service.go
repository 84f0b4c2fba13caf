package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/meeting"
	"github.com/venturelink-platform/internal/domain/user"
	"github.com/venturelink-platform/internal/events"
)

// BookingServiceImpl implements the BookingService interface. Meetings move
// through a small state machine (pending to confirmed or declined) and
// availability slots are advisory records: proposing a meeting never checks
// them, and overlapping meetings are permitted.
type BookingServiceImpl struct {
	meetingRepo meeting.Repository
	availRepo   meeting.AvailabilityRepository
	userRepo    user.Repository
	sink        events.Sink
	logger      *slog.Logger
}

// NewBookingService creates a new booking engine
func NewBookingService(
	logger *slog.Logger,
	meetingRepo meeting.Repository,
	availRepo meeting.AvailabilityRepository,
	userRepo user.Repository,
	sink events.Sink,
) BookingService {
	return &BookingServiceImpl{
		meetingRepo: meetingRepo,
		availRepo:   availRepo,
		userRepo:    userRepo,
		sink:        sink,
		logger:      logger,
	}
}

// Propose creates a pending meeting request after resolving the attendee
func (s *BookingServiceImpl) Propose(ctx context.Context, organizerID, attendeeID uuid.UUID, title, description string, startTime time.Time, duration time.Duration) (*meeting.Meeting, error) {
	if _, err := s.userRepo.GetByID(ctx, attendeeID); err != nil {
		return nil, err
	}

	m, err := meeting.NewMeeting(organizerID, attendeeID, title, description, startTime, duration)
	if err != nil {
		return nil, err
	}

	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("Meeting proposed",
		"meeting_id", m.ID.String(),
		"organizer_id", organizerID.String(),
		"attendee_id", attendeeID.String(),
		"start_time", m.StartTime,
	)

	s.sink.Dispatch(events.New(events.KindMeetingProposed, events.MeetingProposed{
		MeetingID:   m.ID,
		OrganizerID: m.OrganizerID,
		AttendeeID:  m.AttendeeID,
		StartTime:   m.StartTime,
	}))

	return m, nil
}

// Respond applies the attendee's decision to a pending request. Failures
// (unknown meeting, wrong responder, already resolved) leave the meeting
// unchanged.
func (s *BookingServiceImpl) Respond(ctx context.Context, meetingID, responderID uuid.UUID, decision meeting.Decision) (*meeting.Meeting, error) {
	m, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	if err := m.Respond(responderID, decision); err != nil {
		return nil, err
	}

	if err := s.meetingRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("Meeting resolved",
		"meeting_id", m.ID.String(),
		"status", string(m.Status),
		"responder_id", responderID.String(),
	)

	s.sink.Dispatch(events.New(events.KindMeetingResolved, events.MeetingResolved{
		MeetingID:  m.ID,
		AttendeeID: m.AttendeeID,
		Status:     string(m.Status),
	}))

	return m, nil
}

// ListForUser returns meetings where the user is organizer or attendee
func (s *BookingServiceImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*meeting.Meeting, error) {
	return s.meetingRepo.ListByParticipant(ctx, userID)
}

// ListPending returns the user's actionable inbox
func (s *BookingServiceImpl) ListPending(ctx context.Context, userID uuid.UUID) ([]*meeting.Meeting, error) {
	return s.meetingRepo.ListPendingForAttendee(ctx, userID)
}

// AddAvailability records an advisory availability slot
func (s *BookingServiceImpl) AddAvailability(ctx context.Context, userID uuid.UUID, dayOfWeek int, startTime, endTime string, isRecurring bool) (*meeting.AvailabilitySlot, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	slot, err := meeting.NewAvailabilitySlot(userID, dayOfWeek, startTime, endTime, isRecurring)
	if err != nil {
		return nil, err
	}

	if err := s.availRepo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// ListAvailability returns the user's availability slots
func (s *BookingServiceImpl) ListAvailability(ctx context.Context, userID uuid.UUID) ([]*meeting.AvailabilitySlot, error) {
	return s.availRepo.ListByUser(ctx, userID)
}

// RemoveAvailability deletes a slot after checking ownership
func (s *BookingServiceImpl) RemoveAvailability(ctx context.Context, slotID, userID uuid.UUID) error {
	slot, err := s.availRepo.GetByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.UserID != userID {
		return ErrNotSlotOwner
	}
	return s.availRepo.Delete(ctx, slotID)
}
