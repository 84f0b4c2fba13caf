package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/venturelink-platform/internal/domain/meeting"
	"github.com/venturelink-platform/internal/platform/persistence"
)

// MeetingRepository implements the meeting.Repository interface for PostgreSQL
type MeetingRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewMeetingRepository creates a new PostgreSQL meeting repository
func NewMeetingRepository(logger *slog.Logger, db *persistence.PostgresDB) meeting.Repository {
	return &MeetingRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new meeting request
func (r *MeetingRepository) Create(ctx context.Context, m *meeting.Meeting) error {
	query := `
		INSERT INTO meetings (id, title, description, start_time, end_time, organizer_id, attendee_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.querier.Exec(ctx, query,
		m.ID,
		m.Title,
		m.Description,
		m.StartTime,
		m.EndTime,
		m.OrganizerID,
		m.AttendeeID,
		string(m.Status),
		m.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create meeting", "error", err)
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	return nil
}

// GetByID retrieves a meeting by id
func (r *MeetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*meeting.Meeting, error) {
	query := `
		SELECT id, title, description, start_time, end_time, organizer_id, attendee_id, status, created_at
		FROM meetings
		WHERE id = $1
	`

	m, err := r.scanMeeting(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, meeting.ErrMeetingNotFound{MeetingID: id}
		}
		r.logger.Error("Failed to get meeting", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	return m, nil
}

// Update persists a status transition. The WHERE clause only matches pending
// rows, so a meeting that already reached a terminal status is never
// rewritten by a racing response.
func (r *MeetingRepository) Update(ctx context.Context, m *meeting.Meeting) error {
	query := `
		UPDATE meetings
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	result, err := r.querier.Exec(ctx, query, string(m.Status), m.ID, string(meeting.StatusPending))
	if err != nil {
		r.logger.Error("Failed to update meeting", "id", m.ID.String(), "error", err)
		return fmt.Errorf("failed to update meeting: %w", err)
	}

	if result.RowsAffected() == 0 {
		// Missing row and already-resolved row both match zero rows
		var status string
		err := r.querier.QueryRow(ctx, `SELECT status FROM meetings WHERE id = $1`, m.ID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return meeting.ErrMeetingNotFound{MeetingID: m.ID}
		}
		if err != nil {
			r.logger.Error("Failed to check meeting status", "id", m.ID.String(), "error", err)
			return fmt.Errorf("failed to check meeting status: %w", err)
		}
		return meeting.ErrNotPending
	}

	return nil
}

// ListByParticipant returns meetings where the user is organizer or attendee,
// sorted by start time ascending
func (r *MeetingRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*meeting.Meeting, error) {
	query := `
		SELECT id, title, description, start_time, end_time, organizer_id, attendee_id, status, created_at
		FROM meetings
		WHERE organizer_id = $1 OR attendee_id = $1
		ORDER BY start_time ASC
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list meetings", "user_id", userID.String(), "error", err)
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	return r.collectMeetings(rows)
}

// ListPendingForAttendee returns pending meetings awaiting the user's response
func (r *MeetingRepository) ListPendingForAttendee(ctx context.Context, userID uuid.UUID) ([]*meeting.Meeting, error) {
	query := `
		SELECT id, title, description, start_time, end_time, organizer_id, attendee_id, status, created_at
		FROM meetings
		WHERE attendee_id = $1 AND status = $2
		ORDER BY start_time ASC
	`

	rows, err := r.querier.Query(ctx, query, userID, string(meeting.StatusPending))
	if err != nil {
		r.logger.Error("Failed to list pending meetings", "user_id", userID.String(), "error", err)
		return nil, fmt.Errorf("failed to list pending meetings: %w", err)
	}
	defer rows.Close()

	return r.collectMeetings(rows)
}

func (r *MeetingRepository) scanMeeting(row pgx.Row) (*meeting.Meeting, error) {
	var m meeting.Meeting
	err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Description,
		&m.StartTime,
		&m.EndTime,
		&m.OrganizerID,
		&m.AttendeeID,
		&m.Status,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MeetingRepository) collectMeetings(rows pgx.Rows) ([]*meeting.Meeting, error) {
	meetings := make([]*meeting.Meeting, 0)
	for rows.Next() {
		m, err := r.scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meetings: %w", err)
	}
	return meetings, nil
}
