package transaction

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the append-only transaction log. Entries are never
// updated or deleted once appended.
type Repository interface {
	Append(ctx context.Context, tx *Transaction) error

	// GetByID returns ErrTransactionNotFound if no entry exists
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)

	// ListByParticipant returns entries where the user is sender or receiver,
	// sorted by creation time descending (newest first)
	ListByParticipant(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Transaction, error)

	CountByParticipant(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ErrTransactionNotFound indicates a missing ledger entry
type ErrTransactionNotFound struct {
	TransactionID uuid.UUID
}

func (e ErrTransactionNotFound) Error() string {
	return "transaction not found: " + e.TransactionID.String()
}
