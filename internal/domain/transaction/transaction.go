package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidType = errors.New("invalid transaction type")

// Type defines possible transaction operations
type Type string

const (
	TypeDeposit  Type = "deposit"
	TypeWithdraw Type = "withdraw"
	TypeTransfer Type = "transfer"
	TypeFunding  Type = "funding"
)

// Status defines transaction states
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Transaction is an immutable ledger entry recording a balance-affecting
// event. Amount and parties never change after creation, only the status may
// move out of pending.
type Transaction struct {
	ID          uuid.UUID  `json:"id" bson:"id"`
	Type        Type       `json:"type" bson:"type"`
	Amount      int64      `json:"amount" bson:"amount"` // Stored in cents/minor units
	SenderID    uuid.UUID  `json:"sender_id" bson:"sender_id"`
	ReceiverID  *uuid.UUID `json:"receiver_id,omitempty" bson:"receiver_id,omitempty"`
	Status      Status     `json:"status" bson:"status"`
	Description string     `json:"description" bson:"description"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}

// New creates a completed ledger entry. All committed engine operations are
// recorded as completed; failed preconditions never reach the log.
func New(txType Type, amount int64, senderID uuid.UUID, receiverID *uuid.UUID, description string) (*Transaction, error) {
	switch txType {
	case TypeDeposit, TypeWithdraw, TypeTransfer, TypeFunding:
	default:
		return nil, ErrInvalidType
	}
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	return &Transaction{
		ID:          uuid.New(),
		Type:        txType,
		Amount:      amount,
		SenderID:    senderID,
		ReceiverID:  receiverID,
		Status:      StatusCompleted,
		Description: description,
		CreatedAt:   time.Now(),
	}, nil
}

// Involves reports whether the user is sender or receiver of the entry
func (t *Transaction) Involves(userID uuid.UUID) bool {
	if t.SenderID == userID {
		return true
	}
	return t.ReceiverID != nil && *t.ReceiverID == userID
}
