package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/transaction"
	"github.com/venturelink-platform/internal/domain/user"
	"github.com/venturelink-platform/internal/domain/wallet"
	"github.com/venturelink-platform/internal/events"
)

// LedgerServiceImpl implements the LedgerService interface. Operations are
// synchronous and non-blocking: preconditions are checked first, then the full
// effect is applied in one step, then a completed entry is appended to the
// log. Rejected operations never reach the log.
type LedgerServiceImpl struct {
	walletRepo      wallet.Repository
	txRepo          transaction.Repository
	userRepo        user.Repository
	sink            events.Sink
	logger          *slog.Logger
	startingBalance int64
	currency        string
}

// NewLedgerService creates a new ledger engine
func NewLedgerService(
	logger *slog.Logger,
	walletRepo wallet.Repository,
	txRepo transaction.Repository,
	userRepo user.Repository,
	sink events.Sink,
	startingBalance int64,
	currency string,
) LedgerService {
	return &LedgerServiceImpl{
		walletRepo:      walletRepo,
		txRepo:          txRepo,
		userRepo:        userRepo,
		sink:            sink,
		logger:          logger,
		startingBalance: startingBalance,
		currency:        currency,
	}
}

// GetWallet returns the user's wallet, creating it lazily on first access
func (s *LedgerServiceImpl) GetWallet(ctx context.Context, userID uuid.UUID) (*wallet.Wallet, error) {
	w, err := s.walletRepo.GetByUserID(ctx, userID)
	if err == nil {
		return w, nil
	}

	var notFound wallet.ErrWalletNotFound
	if !errors.As(err, &notFound) {
		return nil, err
	}

	w, err = wallet.NewWallet(userID, s.startingBalance, s.currency)
	if err != nil {
		return nil, err
	}
	if err := s.walletRepo.Create(ctx, w); err != nil {
		var exists wallet.ErrWalletExists
		if errors.As(err, &exists) {
			// Lost a concurrent first-access race; the winner's wallet stands
			return s.walletRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	s.logger.Info("Wallet created",
		"user_id", userID.String(),
		"starting_balance", s.startingBalance,
		"currency", s.currency,
	)
	return w, nil
}

// Deposit credits the wallet and appends a completed deposit entry
func (s *LedgerServiceImpl) Deposit(ctx context.Context, userID uuid.UUID, amount int64, description string) (*transaction.Transaction, error) {
	if amount <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	w, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	readVersion := w.Version
	if err := w.Credit(amount); err != nil {
		return nil, err
	}
	if err := s.walletRepo.UpdateBalance(ctx, userID, w.Balance, readVersion); err != nil {
		return nil, err
	}

	if description == "" {
		description = "Deposit"
	}
	return s.record(ctx, transaction.TypeDeposit, amount, userID, nil, description)
}

// Withdraw debits the wallet and appends a completed withdraw entry. The
// insufficient-funds check happens before any mutation, so a rejected
// withdrawal leaves both balance and log unchanged.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, userID uuid.UUID, amount int64, description string) (*transaction.Transaction, error) {
	if amount <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	w, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	readVersion := w.Version
	if err := w.Debit(amount); err != nil {
		return nil, err
	}
	if err := s.walletRepo.UpdateBalance(ctx, userID, w.Balance, readVersion); err != nil {
		return nil, err
	}

	if description == "" {
		description = "Withdrawal"
	}
	return s.record(ctx, transaction.TypeWithdraw, amount, userID, nil, description)
}

// Transfer debits the sender and credits the recipient resolved by email
func (s *LedgerServiceImpl) Transfer(ctx context.Context, senderID uuid.UUID, recipientEmail string, amount int64, description string) (*transaction.Transaction, error) {
	if description == "" {
		description = fmt.Sprintf("Transfer to %s", recipientEmail)
	}
	return s.moveFunds(ctx, transaction.TypeTransfer, senderID, recipientEmail, amount, description)
}

// FundDeal is a transfer tagged as deal funding. The investor-role check is
// enforced here rather than left to the caller.
func (s *LedgerServiceImpl) FundDeal(ctx context.Context, senderID uuid.UUID, recipientEmail string, amount int64, description string) (*transaction.Transaction, error) {
	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if !sender.IsInvestor() {
		s.logger.Warn("Deal funding rejected for non-investor",
			"sender_id", senderID.String(),
			"role", string(sender.Role),
		)
		return nil, ErrFundingForbidden
	}

	if description == "" {
		description = fmt.Sprintf("Funding deal: %s", recipientEmail)
	}
	return s.moveFunds(ctx, transaction.TypeFunding, senderID, recipientEmail, amount, description)
}

// moveFunds applies a two-sided transfer: the recipient email is resolved
// through the user directory and their wallet is credited in the same
// operation that debits the sender. All preconditions are checked before the
// first mutation.
func (s *LedgerServiceImpl) moveFunds(ctx context.Context, txType transaction.Type, senderID uuid.UUID, recipientEmail string, amount int64, description string) (*transaction.Transaction, error) {
	if amount <= 0 {
		return nil, wallet.ErrInvalidAmount
	}
	if strings.TrimSpace(recipientEmail) == "" {
		return nil, ErrEmptyRecipient
	}

	recipient, err := s.userRepo.GetByEmail(ctx, recipientEmail)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	senderWallet, err := s.GetWallet(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if !senderWallet.CanDebit(amount) {
		return nil, wallet.ErrInsufficientFunds
	}

	recipientWallet, err := s.GetWallet(ctx, recipient.ID)
	if err != nil {
		return nil, err
	}

	// Self-transfer: debit and credit land on the same wallet snapshot
	if recipient.ID == senderID {
		recipientWallet = senderWallet
	}

	senderVersion := senderWallet.Version
	if err := senderWallet.Debit(amount); err != nil {
		return nil, err
	}
	recipientVersion := recipientWallet.Version
	if err := recipientWallet.Credit(amount); err != nil {
		return nil, err
	}

	if recipient.ID == senderID {
		// Debit and credit landed on the same snapshot: one guarded write
		if err := s.walletRepo.UpdateBalance(ctx, senderID, senderWallet.Balance, senderVersion); err != nil {
			return nil, err
		}
	} else {
		// Both sides commit together or not at all
		err := s.walletRepo.TransferBalances(ctx,
			wallet.BalanceChange{UserID: senderID, Balance: senderWallet.Balance, Version: senderVersion},
			wallet.BalanceChange{UserID: recipient.ID, Balance: recipientWallet.Balance, Version: recipientVersion},
		)
		if err != nil {
			return nil, err
		}
	}

	return s.record(ctx, txType, amount, senderID, &recipient.ID, description)
}

// record appends the completed entry and emits the corresponding event
func (s *LedgerServiceImpl) record(ctx context.Context, txType transaction.Type, amount int64, senderID uuid.UUID, receiverID *uuid.UUID, description string) (*transaction.Transaction, error) {
	tx, err := transaction.New(txType, amount, senderID, receiverID, description)
	if err != nil {
		return nil, err
	}
	if err := s.txRepo.Append(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction committed",
		"transaction_id", tx.ID.String(),
		"type", string(tx.Type),
		"amount", tx.Amount,
		"sender_id", tx.SenderID.String(),
	)

	s.sink.Dispatch(events.New(events.KindTransactionCompleted, events.TransactionCompleted{
		TransactionID: tx.ID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		SenderID:      tx.SenderID,
		ReceiverID:    tx.ReceiverID,
	}))

	return tx, nil
}

// ListTransactions returns the user's entries newest first with a total count
func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, userID uuid.UUID, page, perPage int) ([]*transaction.Transaction, int64, error) {
	offset := (page - 1) * perPage

	entries, err := s.txRepo.ListByParticipant(ctx, userID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.txRepo.CountByParticipant(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
