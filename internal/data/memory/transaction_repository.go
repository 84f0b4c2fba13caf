package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/transaction"
)

// TransactionRepository implements the append-only transaction log in memory.
// Entries are held in creation order; listings are recomputed views and never
// reorder the stored log.
type TransactionRepository struct {
	mu      sync.RWMutex
	entries []transaction.Transaction
}

// NewTransactionRepository creates an empty transaction log
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Append adds an entry to the end of the log
func (r *TransactionRepository) Append(_ context.Context, tx *transaction.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, *tx)
	return nil
}

// GetByID retrieves an entry by id
func (r *TransactionRepository) GetByID(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			copied := r.entries[i]
			return &copied, nil
		}
	}
	return nil, transaction.ErrTransactionNotFound{TransactionID: id}
}

// ListByParticipant returns entries where the user is sender or receiver,
// newest first
func (r *TransactionRepository) ListByParticipant(_ context.Context, userID uuid.UUID, limit, offset int) ([]*transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*transaction.Transaction
	for i := range r.entries {
		if r.entries[i].Involves(userID) {
			copied := r.entries[i]
			matched = append(matched, &copied)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// CountByParticipant counts entries where the user is sender or receiver
func (r *TransactionRepository) CountByParticipant(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for i := range r.entries {
		if r.entries[i].Involves(userID) {
			count++
		}
	}
	return count, nil
}

// Len reports the total number of entries in the log, all users included
func (r *TransactionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
