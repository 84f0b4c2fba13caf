package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/meeting"
	"github.com/venturelink-platform/internal/domain/user"
	"github.com/venturelink-platform/internal/service"
)

// BookingHandler handles HTTP requests for meetings and availability
type BookingHandler struct {
	bookingService service.BookingService
	logger         *slog.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(logger *slog.Logger, bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Propose creates a pending meeting request
func (h *BookingHandler) Propose(c *gin.Context) {
	var req ProposeMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	organizerID, err := uuid.Parse(req.OrganizerID)
	if err != nil {
		RespondBadRequest(c, "Invalid organizer ID")
		return
	}
	attendeeID, err := uuid.Parse(req.AttendeeID)
	if err != nil {
		RespondBadRequest(c, "Invalid attendee ID")
		return
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		RespondBadRequest(c, "Invalid start time, expected RFC3339")
		return
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	m, err := h.bookingService.Propose(c.Request.Context(), organizerID, attendeeID, req.Title, req.Description, startTime, duration)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	RespondCreated(c, mapMeetingToResponse(m))
}

// Respond applies the attendee's decision to a pending request
func (h *BookingHandler) Respond(c *gin.Context) {
	idParam := c.Param("id")
	meetingID, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid meeting ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid meeting ID")
		return
	}

	var req RespondMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	responderID, err := uuid.Parse(req.ResponderID)
	if err != nil {
		RespondBadRequest(c, "Invalid responder ID")
		return
	}

	m, err := h.bookingService.Respond(c.Request.Context(), meetingID, responderID, meeting.Decision(req.Decision))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	RespondOK(c, mapMeetingToResponse(m))
}

// ListForUser returns meetings where the user is organizer or attendee
func (h *BookingHandler) ListForUser(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	meetings, err := h.bookingService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list meetings", "user_id", userID.String(), "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapMeetingsToResponse(meetings))
}

// ListPending returns pending meetings awaiting the user's response
func (h *BookingHandler) ListPending(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	meetings, err := h.bookingService.ListPending(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list pending meetings", "user_id", userID.String(), "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapMeetingsToResponse(meetings))
}

// AddAvailability records an advisory availability slot
func (h *BookingHandler) AddAvailability(c *gin.Context) {
	var req AddAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		RespondBadRequest(c, "Invalid user ID")
		return
	}

	slot, err := h.bookingService.AddAvailability(c.Request.Context(), userID, req.DayOfWeek, req.StartTime, req.EndTime, req.IsRecurring)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	RespondCreated(c, mapSlotToResponse(slot))
}

// ListAvailability returns the user's availability slots
func (h *BookingHandler) ListAvailability(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	slots, err := h.bookingService.ListAvailability(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list availability", "user_id", userID.String(), "error", err)
		RespondInternalError(c)
		return
	}

	responses := make([]AvailabilityResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, mapSlotToResponse(slot))
	}
	RespondOK(c, responses)
}

// RemoveAvailability deletes a slot owned by the requesting user
func (h *BookingHandler) RemoveAvailability(c *gin.Context) {
	idParam := c.Param("id")
	slotID, err := uuid.Parse(idParam)
	if err != nil {
		RespondBadRequest(c, "Invalid slot ID")
		return
	}

	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		RespondBadRequest(c, "Invalid or missing user_id")
		return
	}

	if err := h.bookingService.RemoveAvailability(c.Request.Context(), slotID, userID); err != nil {
		h.respondBookingError(c, err)
		return
	}

	RespondNoContent(c)
}

// parseUserID parses the :id path parameter, responding 400 on failure
func (h *BookingHandler) parseUserID(c *gin.Context) (uuid.UUID, bool) {
	idParam := c.Param("id")
	userID, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid user ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid user ID")
		return uuid.Nil, false
	}
	return userID, true
}

// respondBookingError maps booking engine errors to HTTP status codes
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var userNotFound user.ErrUserNotFound
	var meetingNotFound meeting.ErrMeetingNotFound
	var slotNotFound meeting.ErrSlotNotFound

	switch {
	case errors.Is(err, meeting.ErrEmptyTitle),
		errors.Is(err, meeting.ErrInvalidDuration),
		errors.Is(err, meeting.ErrSelfMeeting),
		errors.Is(err, meeting.ErrInvalidDecision),
		errors.Is(err, meeting.ErrInvalidDayOfWeek),
		errors.Is(err, meeting.ErrInvalidTimeRange),
		errors.Is(err, meeting.ErrInvalidClock):
		RespondBadRequest(c, err.Error())
	case errors.Is(err, meeting.ErrNotAttendee), errors.Is(err, service.ErrNotSlotOwner):
		RespondForbidden(c, err.Error())
	case errors.Is(err, meeting.ErrNotPending):
		RespondConflict(c, "Meeting request has already been resolved")
	case errors.As(err, &userNotFound):
		RespondNotFound(c, "User not found")
	case errors.As(err, &meetingNotFound):
		RespondNotFound(c, "Meeting not found")
	case errors.As(err, &slotNotFound):
		RespondNotFound(c, "Availability slot not found")
	default:
		h.logger.Error("Booking operation failed", "error", err)
		RespondInternalError(c)
	}
}

// mapMeetingToResponse maps a meeting entity to a meeting response DTO
func mapMeetingToResponse(m *meeting.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		StartTime:   m.StartTime.Format(time.RFC3339),
		EndTime:     m.EndTime.Format(time.RFC3339),
		OrganizerID: m.OrganizerID.String(),
		AttendeeID:  m.AttendeeID.String(),
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

func mapMeetingsToResponse(meetings []*meeting.Meeting) []MeetingResponse {
	responses := make([]MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, mapMeetingToResponse(m))
	}
	return responses
}

// mapSlotToResponse maps an availability slot to a response DTO
func mapSlotToResponse(slot *meeting.AvailabilitySlot) AvailabilityResponse {
	return AvailabilityResponse{
		ID:          slot.ID.String(),
		UserID:      slot.UserID.String(),
		DayOfWeek:   slot.DayOfWeek,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		IsRecurring: slot.IsRecurring,
	}
}
