package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/wallet"
)

// WalletRepository implements wallet.Repository over a process-local map
type WalletRepository struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]wallet.Wallet
}

// NewWalletRepository creates an empty wallet store
func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		wallets: make(map[uuid.UUID]wallet.Wallet),
	}
}

// Create stores a new wallet. An existing wallet is never overwritten: two
// racing first-accesses must not reset a balance the winner already changed.
func (r *WalletRepository) Create(_ context.Context, w *wallet.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.wallets[w.UserID]; ok {
		return wallet.ErrWalletExists{UserID: w.UserID}
	}
	r.wallets[w.UserID] = *w
	return nil
}

// GetByUserID retrieves a wallet by owner
func (r *WalletRepository) GetByUserID(_ context.Context, userID uuid.UUID) (*wallet.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wallets[userID]
	if !ok {
		return nil, wallet.ErrWalletNotFound{UserID: userID}
	}
	copied := w
	return &copied, nil
}

// UpdateBalance applies a balance update guarded by the version the caller
// read, mirroring the optimistic check of the database backend.
func (r *WalletRepository) UpdateBalance(_ context.Context, userID uuid.UUID, balance int64, version int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wallets[userID]
	if !ok {
		return wallet.ErrWalletNotFound{UserID: userID}
	}
	if w.Version != version {
		return wallet.ErrConcurrentModification{UserID: userID}
	}

	w.Balance = balance
	w.Version++
	w.UpdatedAt = time.Now()
	r.wallets[userID] = w
	return nil
}

// TransferBalances applies both sides of a transfer under one lock. Both
// wallets are checked before either is written, so a failed version check
// leaves both sides untouched.
func (r *WalletRepository) TransferBalances(_ context.Context, debit, credit wallet.BalanceChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sides := [2]wallet.BalanceChange{debit, credit}
	for _, side := range sides {
		w, ok := r.wallets[side.UserID]
		if !ok {
			return wallet.ErrWalletNotFound{UserID: side.UserID}
		}
		if w.Version != side.Version {
			return wallet.ErrConcurrentModification{UserID: side.UserID}
		}
	}

	now := time.Now()
	for _, side := range sides {
		w := r.wallets[side.UserID]
		w.Balance = side.Balance
		w.Version++
		w.UpdatedAt = now
		r.wallets[side.UserID] = w
	}
	return nil
}
