package wallet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrInvalidCurrencyFormat = errors.New("currency must be a 3-letter code")
)

// Wallet holds a user's balance. There is exactly one wallet per user; it is
// created lazily on first access and never deleted within a session.
type Wallet struct {
	UserID    uuid.UUID `json:"user_id"`
	Balance   int64     `json:"balance"` // Stored in cents/minor units
	Currency  string    `json:"currency"`
	Version   int       `json:"version"` // For optimistic locking
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWallet creates a wallet for the given user with a starting balance
func NewWallet(userID uuid.UUID, startingBalance int64, currency string) (*Wallet, error) {
	if startingBalance < 0 {
		return nil, ErrInvalidAmount
	}
	if len(currency) != 3 {
		return nil, ErrInvalidCurrencyFormat
	}

	return &Wallet{
		UserID:    userID,
		Balance:   startingBalance,
		Currency:  currency,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// Credit adds the specified amount to the wallet balance
func (w *Wallet) Credit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	w.Balance += amount
	w.UpdatedAt = time.Now()
	w.Version++
	return nil
}

// Debit subtracts the specified amount from the wallet balance. The
// non-negative balance invariant is checked before any mutation.
func (w *Wallet) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if w.Balance < amount {
		return ErrInsufficientFunds
	}

	w.Balance -= amount
	w.UpdatedAt = time.Now()
	w.Version++
	return nil
}

// CanDebit checks if the wallet has sufficient funds for a debit
func (w *Wallet) CanDebit(amount int64) bool {
	return w.Balance >= amount
}
