package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/venturelink-platform/internal/domain/wallet"
	"github.com/venturelink-platform/internal/platform/persistence"
)

// WalletRepository implements the wallet.Repository interface for PostgreSQL
type WalletRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	db      persistence.TxRunner
	logger  *slog.Logger
}

// NewWalletRepository creates a new PostgreSQL wallet repository
func NewWalletRepository(logger *slog.Logger, db *persistence.PostgresDB) wallet.Repository {
	return &WalletRepository{
		querier: db.Pool(),
		db:      db,
		logger:  logger,
	}
}

// WithTx wraps the repository with a transaction. Two-sided transfers run both
// balance updates through the same transaction.
func (r *WalletRepository) WithTx(tx pgx.Tx) wallet.Repository {
	return &WalletRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// Create stores a new wallet. The primary key on user_id surfaces as
// ErrWalletExists, so a lost lazy-creation race never overwrites a balance.
func (r *WalletRepository) Create(ctx context.Context, w *wallet.Wallet) error {
	query := `
		INSERT INTO wallets (user_id, balance, currency, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.querier.Exec(ctx, query,
		w.UserID,
		w.Balance,
		w.Currency,
		w.Version,
		w.CreatedAt,
		w.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return wallet.ErrWalletExists{UserID: w.UserID}
		}
		r.logger.Error("Failed to create wallet", "user_id", w.UserID.String(), "error", err)
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	return nil
}

// GetByUserID retrieves the user's wallet
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*wallet.Wallet, error) {
	query := `
		SELECT user_id, balance, currency, version, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var w wallet.Wallet
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&w.UserID,
		&w.Balance,
		&w.Currency,
		&w.Version,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, wallet.ErrWalletNotFound{UserID: userID}
		}
		r.logger.Error("Failed to get wallet", "user_id", userID.String(), "error", err)
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &w, nil
}

// UpdateBalance sets the wallet balance using optimistic locking. The caller
// passes the version it read; the row is only updated when that version still
// matches, and the stored version is incremented.
func (r *WalletRepository) UpdateBalance(ctx context.Context, userID uuid.UUID, balance int64, version int) error {
	query := `
		UPDATE wallets
		SET balance = $1, version = version + 1, updated_at = NOW()
		WHERE user_id = $2 AND version = $3
	`

	result, err := r.querier.Exec(ctx, query, balance, userID, version)
	if err != nil {
		r.logger.Error("Failed to update wallet balance", "user_id", userID.String(), "error", err)
		return fmt.Errorf("failed to update wallet balance: %w", err)
	}

	if result.RowsAffected() == 0 {
		return wallet.ErrConcurrentModification{UserID: userID}
	}

	return nil
}

// TransferBalances commits the debit and credit sides of a transfer in one
// database transaction. A version mismatch on either side rolls back the
// whole transfer, so a sender is never left debited without the credit.
func (r *WalletRepository) TransferBalances(ctx context.Context, debit, credit wallet.BalanceChange) error {
	apply := func(repo wallet.Repository) error {
		if err := repo.UpdateBalance(ctx, debit.UserID, debit.Balance, debit.Version); err != nil {
			return err
		}
		return repo.UpdateBalance(ctx, credit.UserID, credit.Balance, credit.Version)
	}

	if r.db == nil {
		// Transaction-scoped repository: the surrounding transaction
		// already provides atomicity
		return apply(r)
	}

	return r.db.ExecuteTx(ctx, func(tx pgx.Tx) error {
		return apply(r.WithTx(tx))
	})
}
