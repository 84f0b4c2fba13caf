package meeting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeeting(t *testing.T) {
	organizerID := uuid.New()
	attendeeID := uuid.New()
	start := time.Now().Add(24 * time.Hour)

	t.Run("SuccessfulCreation", func(t *testing.T) {
		m, err := NewMeeting(organizerID, attendeeID, "Pitch review", "Series A deck walkthrough", start, time.Hour)

		require.NoError(t, err)
		require.NotNil(t, m)

		assert.NotEqual(t, uuid.Nil, m.ID)
		assert.Equal(t, StatusPending, m.Status, "New meetings start pending")
		assert.Equal(t, start, m.StartTime)
		assert.Equal(t, start.Add(time.Hour), m.EndTime)
		assert.True(t, m.EndTime.After(m.StartTime))
		assert.Equal(t, organizerID, m.OrganizerID)
		assert.Equal(t, attendeeID, m.AttendeeID)
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		m, err := NewMeeting(organizerID, attendeeID, "", "", start, time.Hour)
		assert.ErrorIs(t, err, ErrEmptyTitle)
		assert.Nil(t, m)
	})

	t.Run("NonPositiveDuration", func(t *testing.T) {
		m, err := NewMeeting(organizerID, attendeeID, "Pitch review", "", start, 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
		assert.Nil(t, m)
	})

	t.Run("SelfMeeting", func(t *testing.T) {
		m, err := NewMeeting(organizerID, organizerID, "Pitch review", "", start, time.Hour)
		assert.ErrorIs(t, err, ErrSelfMeeting)
		assert.Nil(t, m)
	})
}

func TestMeeting_Respond(t *testing.T) {
	organizerID := uuid.New()
	attendeeID := uuid.New()

	newPending := func(t *testing.T) *Meeting {
		m, err := NewMeeting(organizerID, attendeeID, "Intro call", "", time.Now().Add(time.Hour), 30*time.Minute)
		require.NoError(t, err)
		return m
	}

	t.Run("AcceptConfirms", func(t *testing.T) {
		m := newPending(t)

		err := m.Respond(attendeeID, DecisionAccept)

		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, m.Status)
	})

	t.Run("DeclineDeclines", func(t *testing.T) {
		m := newPending(t)

		err := m.Respond(attendeeID, DecisionDecline)

		require.NoError(t, err)
		assert.Equal(t, StatusDeclined, m.Status)
	})

	t.Run("NonAttendeeForbidden", func(t *testing.T) {
		m := newPending(t)

		err := m.Respond(organizerID, DecisionAccept)

		assert.ErrorIs(t, err, ErrNotAttendee)
		assert.Equal(t, StatusPending, m.Status, "Meeting should stay pending")
	})

	t.Run("TerminalStateIsFinal", func(t *testing.T) {
		m := newPending(t)
		require.NoError(t, m.Respond(attendeeID, DecisionAccept))

		err := m.Respond(attendeeID, DecisionDecline)

		assert.ErrorIs(t, err, ErrNotPending)
		assert.Equal(t, StatusConfirmed, m.Status, "Terminal state should be unchanged")
	})

	t.Run("UnknownDecision", func(t *testing.T) {
		m := newPending(t)

		err := m.Respond(attendeeID, Decision("maybe"))

		assert.ErrorIs(t, err, ErrInvalidDecision)
		assert.Equal(t, StatusPending, m.Status)
	})
}

func TestMeeting_Views(t *testing.T) {
	organizerID := uuid.New()
	attendeeID := uuid.New()
	other := uuid.New()

	m, err := NewMeeting(organizerID, attendeeID, "Due diligence", "", time.Now(), time.Hour)
	require.NoError(t, err)

	assert.True(t, m.Involves(organizerID))
	assert.True(t, m.Involves(attendeeID))
	assert.False(t, m.Involves(other))

	assert.True(t, m.IsPendingFor(attendeeID))
	assert.False(t, m.IsPendingFor(organizerID), "Pending inbox belongs to the attendee only")

	require.NoError(t, m.Respond(attendeeID, DecisionAccept))
	assert.False(t, m.IsPendingFor(attendeeID))
}

func TestNewAvailabilitySlot(t *testing.T) {
	userID := uuid.New()

	t.Run("SuccessfulCreation", func(t *testing.T) {
		slot, err := NewAvailabilitySlot(userID, 1, "09:00", "17:30", true)

		require.NoError(t, err)
		assert.Equal(t, userID, slot.UserID)
		assert.Equal(t, 1, slot.DayOfWeek)
		assert.True(t, slot.IsRecurring)
	})

	t.Run("DayOutOfRange", func(t *testing.T) {
		_, err := NewAvailabilitySlot(userID, 7, "09:00", "17:00", false)
		assert.ErrorIs(t, err, ErrInvalidDayOfWeek)

		_, err = NewAvailabilitySlot(userID, -1, "09:00", "17:00", false)
		assert.ErrorIs(t, err, ErrInvalidDayOfWeek)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := NewAvailabilitySlot(userID, 2, "17:00", "09:00", false)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("MalformedClock", func(t *testing.T) {
		_, err := NewAvailabilitySlot(userID, 2, "9am", "17:00", false)
		assert.ErrorIs(t, err, ErrInvalidClock)
	})
}
