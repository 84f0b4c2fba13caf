package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/meeting"
	"github.com/venturelink-platform/internal/domain/transaction"
	"github.com/venturelink-platform/internal/domain/user"
	"github.com/venturelink-platform/internal/domain/wallet"
)

// Engine-level errors not owned by a single entity
var (
	ErrEmptyRecipient    = errors.New("recipient email is required")
	ErrRecipientNotFound = errors.New("recipient is not a registered user")
	ErrFundingForbidden  = errors.New("deal funding is restricted to investor accounts")
	ErrNotSlotOwner      = errors.New("availability slot belongs to another user")
)

// UserService defines the user directory operations
type UserService interface {
	// Register creates a directory entry
	// Returns ErrDuplicateEmail if the email is already registered
	Register(ctx context.Context, name, email string, role user.Role) (*user.User, error)

	// GetByID retrieves a user by id
	// Returns ErrUserNotFound if the user doesn't exist
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// LedgerService defines the wallet and transaction log operations. Every
// operation validates its preconditions before mutating anything, so a failed
// call leaves both the wallet and the log untouched.
type LedgerService interface {
	// GetWallet returns the user's wallet, creating it lazily with the
	// configured starting balance on first access
	GetWallet(ctx context.Context, userID uuid.UUID) (*wallet.Wallet, error)

	// Deposit credits the wallet and appends a completed deposit entry
	Deposit(ctx context.Context, userID uuid.UUID, amount int64, description string) (*transaction.Transaction, error)

	// Withdraw debits the wallet and appends a completed withdraw entry
	// Returns ErrInsufficientFunds when the amount exceeds the balance
	Withdraw(ctx context.Context, userID uuid.UUID, amount int64, description string) (*transaction.Transaction, error)

	// Transfer debits the sender and credits the recipient resolved by email
	// Returns ErrRecipientNotFound when the email is not registered
	Transfer(ctx context.Context, senderID uuid.UUID, recipientEmail string, amount int64, description string) (*transaction.Transaction, error)

	// FundDeal is Transfer tagged as deal funding; only investors may call it
	// Returns ErrFundingForbidden when the sender is not an investor
	FundDeal(ctx context.Context, senderID uuid.UUID, recipientEmail string, amount int64, description string) (*transaction.Transaction, error)

	// ListTransactions returns entries where the user is sender or receiver,
	// newest first, with the total count for pagination
	ListTransactions(ctx context.Context, userID uuid.UUID, page, perPage int) ([]*transaction.Transaction, int64, error)
}

// BookingService defines the meeting lifecycle and availability operations
type BookingService interface {
	// Propose creates a pending meeting request from the organizer to the attendee
	Propose(ctx context.Context, organizerID, attendeeID uuid.UUID, title, description string, startTime time.Time, duration time.Duration) (*meeting.Meeting, error)

	// Respond applies the attendee's accept/decline decision to a pending request
	Respond(ctx context.Context, meetingID, responderID uuid.UUID, decision meeting.Decision) (*meeting.Meeting, error)

	// ListForUser returns meetings where the user is organizer or attendee
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*meeting.Meeting, error)

	// ListPending returns pending meetings awaiting the user's response
	ListPending(ctx context.Context, userID uuid.UUID) ([]*meeting.Meeting, error)

	// AddAvailability records a declarative, advisory availability slot
	AddAvailability(ctx context.Context, userID uuid.UUID, dayOfWeek int, startTime, endTime string, isRecurring bool) (*meeting.AvailabilitySlot, error)

	// ListAvailability returns the user's availability slots
	ListAvailability(ctx context.Context, userID uuid.UUID) ([]*meeting.AvailabilitySlot, error)

	// RemoveAvailability deletes a slot owned by the user
	// Returns ErrNotSlotOwner when the slot belongs to someone else
	RemoveAvailability(ctx context.Context, slotID, userID uuid.UUID) error
}
