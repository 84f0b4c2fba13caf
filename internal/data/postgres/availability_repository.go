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

// AvailabilityRepository implements the meeting.AvailabilityRepository
// interface for PostgreSQL
type AvailabilityRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewAvailabilityRepository creates a new PostgreSQL availability repository
func NewAvailabilityRepository(logger *slog.Logger, db *persistence.PostgresDB) meeting.AvailabilityRepository {
	return &AvailabilityRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new availability slot
func (r *AvailabilityRepository) Create(ctx context.Context, slot *meeting.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (id, user_id, day_of_week, start_time, end_time, is_recurring)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.querier.Exec(ctx, query,
		slot.ID,
		slot.UserID,
		slot.DayOfWeek,
		slot.StartTime,
		slot.EndTime,
		slot.IsRecurring,
	)
	if err != nil {
		r.logger.Error("Failed to create availability slot", "error", err)
		return fmt.Errorf("failed to create availability slot: %w", err)
	}

	return nil
}

// GetByID retrieves a slot by id
func (r *AvailabilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*meeting.AvailabilitySlot, error) {
	query := `
		SELECT id, user_id, day_of_week, start_time, end_time, is_recurring
		FROM availability_slots
		WHERE id = $1
	`

	var slot meeting.AvailabilitySlot
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.UserID,
		&slot.DayOfWeek,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsRecurring,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, meeting.ErrSlotNotFound{SlotID: id}
		}
		r.logger.Error("Failed to get availability slot", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to get availability slot: %w", err)
	}

	return &slot, nil
}

// Delete removes a slot
func (r *AvailabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM availability_slots WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete availability slot", "id", id.String(), "error", err)
		return fmt.Errorf("failed to delete availability slot: %w", err)
	}

	if result.RowsAffected() == 0 {
		return meeting.ErrSlotNotFound{SlotID: id}
	}

	return nil
}

// ListByUser returns the user's slots ordered by day then start time
func (r *AvailabilityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*meeting.AvailabilitySlot, error) {
	query := `
		SELECT id, user_id, day_of_week, start_time, end_time, is_recurring
		FROM availability_slots
		WHERE user_id = $1
		ORDER BY day_of_week ASC, start_time ASC
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list availability slots", "user_id", userID.String(), "error", err)
		return nil, fmt.Errorf("failed to list availability slots: %w", err)
	}
	defer rows.Close()

	slots := make([]*meeting.AvailabilitySlot, 0)
	for rows.Next() {
		var slot meeting.AvailabilitySlot
		err := rows.Scan(
			&slot.ID,
			&slot.UserID,
			&slot.DayOfWeek,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsRecurring,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability slot: %w", err)
		}
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate availability slots: %w", err)
	}

	return slots, nil
}
