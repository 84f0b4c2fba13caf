package wallet

import (
	"context"

	"github.com/google/uuid"
)

// BalanceChange is one side of a two-sided transfer: the new balance for the
// wallet and the version the caller read it at
type BalanceChange struct {
	UserID  uuid.UUID
	Balance int64
	Version int
}

// Repository defines wallet persistence operations
type Repository interface {
	// Create returns ErrWalletExists when the user already has a wallet
	Create(ctx context.Context, w *Wallet) error

	// GetByUserID returns ErrWalletNotFound if the user has no wallet yet
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Wallet, error)

	// UpdateBalance uses optimistic locking to update the wallet balance.
	// Returns ErrConcurrentModification when the version no longer matches.
	UpdateBalance(ctx context.Context, userID uuid.UUID, balance int64, version int) error

	// TransferBalances applies the debit and credit sides of a transfer
	// atomically. When either side fails its version check, neither side is
	// applied and ErrConcurrentModification is returned.
	TransferBalances(ctx context.Context, debit, credit BalanceChange) error
}

// ErrWalletNotFound indicates a missing wallet
type ErrWalletNotFound struct {
	UserID uuid.UUID
}

func (e ErrWalletNotFound) Error() string {
	return "wallet not found for user: " + e.UserID.String()
}

// ErrConcurrentModification indicates optimistic lock failure
type ErrConcurrentModification struct {
	UserID uuid.UUID
}

func (e ErrConcurrentModification) Error() string {
	return "concurrent modification detected for wallet: " + e.UserID.String()
}

// ErrWalletExists indicates the user already has a wallet
type ErrWalletExists struct {
	UserID uuid.UUID
}

func (e ErrWalletExists) Error() string {
	return "wallet already exists for user: " + e.UserID.String()
}
