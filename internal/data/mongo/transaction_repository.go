// Package mongo provides the MongoDB implementation of the append-only
// transaction log used by the database storage backend.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/venturelink-platform/internal/domain/transaction"
)

const (
	// TransactionCollectionName is the name of the transaction log collection
	TransactionCollectionName = "transactions"
)

// TransactionRepository implements the transaction.Repository interface for
// MongoDB. Entries are inserted once and never updated or deleted.
type TransactionRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewTransactionRepository creates a new MongoDB transaction repository
func NewTransactionRepository(logger *slog.Logger, db *mongo.Database) transaction.Repository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts a new log entry
func (r *TransactionRepository) Append(ctx context.Context, tx *transaction.Transaction) error {
	collection := r.db.Collection(TransactionCollectionName)

	if _, err := collection.InsertOne(ctx, tx); err != nil {
		r.logger.Error("Failed to append transaction",
			"transaction_id", tx.ID.String(),
			"error", err)
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a log entry by its ID.
// Returns ErrTransactionNotFound if no entry exists.
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	collection := r.db.Collection(TransactionCollectionName)

	filter := bson.M{"id": id}
	var tx transaction.Transaction
	err := collection.FindOne(ctx, filter).Decode(&tx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, transaction.ErrTransactionNotFound{TransactionID: id}
		}
		r.logger.Error("Failed to get transaction",
			"transaction_id", id.String(),
			"error", err)
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// ListByParticipant retrieves paginated entries where the user is sender or
// receiver. Results are sorted by creation time in descending order (newest
// first).
func (r *TransactionRepository) ListByParticipant(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*transaction.Transaction, error) {
	collection := r.db.Collection(TransactionCollectionName)

	filter := participantFilter(userID)
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to list transactions",
			"user_id", userID.String(),
			"error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*transaction.Transaction
	if err := cursor.All(ctx, &entries); err != nil {
		r.logger.Error("Failed to decode transactions",
			"user_id", userID.String(),
			"error", err)
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return entries, nil
}

// CountByParticipant counts the entries where the user is sender or receiver
func (r *TransactionRepository) CountByParticipant(ctx context.Context, userID uuid.UUID) (int64, error) {
	collection := r.db.Collection(TransactionCollectionName)

	count, err := collection.CountDocuments(ctx, participantFilter(userID))
	if err != nil {
		r.logger.Error("Failed to count transactions",
			"user_id", userID.String(),
			"error", err)
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}

// participantFilter matches entries where the user sent or received the funds
func participantFilter(userID uuid.UUID) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"sender_id": userID},
			{"receiver_id": userID},
		},
	}
}
