package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/venturelink-platform/internal/domain/transaction"
	"github.com/venturelink-platform/internal/domain/user"
	"github.com/venturelink-platform/internal/domain/wallet"
	"github.com/venturelink-platform/internal/service"
)

// LedgerHandler handles HTTP requests for wallets and the transaction log
type LedgerHandler struct {
	ledgerService service.LedgerService
	logger        *slog.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(logger *slog.Logger, ledgerService service.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// GetWallet returns the user's wallet, creating it on first access
func (h *LedgerHandler) GetWallet(c *gin.Context) {
	idParam := c.Param("id")
	userID, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid user ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid user ID")
		return
	}

	w, err := h.ledgerService.GetWallet(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to get wallet", "user_id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapWalletToResponse(w))
}

// Deposit credits the caller's wallet
func (h *LedgerHandler) Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		RespondBadRequest(c, "Invalid user ID")
		return
	}

	tx, err := h.ledgerService.Deposit(c.Request.Context(), userID, req.Amount, req.Description)
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}

	RespondCreated(c, mapTransactionToResponse(tx))
}

// Withdraw debits the caller's wallet
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		RespondBadRequest(c, "Invalid user ID")
		return
	}

	tx, err := h.ledgerService.Withdraw(c.Request.Context(), userID, req.Amount, req.Description)
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}

	RespondCreated(c, mapTransactionToResponse(tx))
}

// Transfer moves funds to a recipient resolved by email
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	senderID, err := uuid.Parse(req.SenderID)
	if err != nil {
		RespondBadRequest(c, "Invalid sender ID")
		return
	}

	tx, err := h.ledgerService.Transfer(c.Request.Context(), senderID, req.RecipientEmail, req.Amount, req.Description)
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}

	RespondCreated(c, mapTransactionToResponse(tx))
}

// FundDeal moves funds from an investor to a recipient resolved by email
func (h *LedgerHandler) FundDeal(c *gin.Context) {
	var req FundDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	investorID, err := uuid.Parse(req.InvestorID)
	if err != nil {
		RespondBadRequest(c, "Invalid investor ID")
		return
	}

	tx, err := h.ledgerService.FundDeal(c.Request.Context(), investorID, req.RecipientEmail, req.Amount, req.Description)
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}

	RespondCreated(c, mapTransactionToResponse(tx))
}

// ListTransactions returns the user's ledger entries, newest first
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	idParam := c.Param("id")
	userID, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid user ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid user ID")
		return
	}

	var params PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Invalid pagination parameters: "+err.Error())
		return
	}

	entries, total, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, params.Page, params.PerPage)
	if err != nil {
		h.logger.Error("Failed to list transactions", "user_id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	responses := make([]TransactionResponse, 0, len(entries))
	for _, tx := range entries {
		responses = append(responses, mapTransactionToResponse(tx))
	}

	RespondWithPaginatedData(c, http.StatusOK, responses, params.Page, params.PerPage, int(total))
}

// respondLedgerError maps ledger engine errors to HTTP status codes
func (h *LedgerHandler) respondLedgerError(c *gin.Context, err error) {
	var userNotFound user.ErrUserNotFound
	var conflict wallet.ErrConcurrentModification

	switch {
	case errors.Is(err, wallet.ErrInvalidAmount):
		RespondBadRequest(c, "Amount must be positive")
	case errors.Is(err, service.ErrEmptyRecipient):
		RespondBadRequest(c, "Recipient email is required")
	case errors.Is(err, wallet.ErrInsufficientFunds):
		RespondUnprocessable(c, "Insufficient funds")
	case errors.Is(err, service.ErrRecipientNotFound):
		RespondNotFound(c, "Recipient is not a registered user")
	case errors.Is(err, service.ErrFundingForbidden):
		RespondForbidden(c, "Only investors may fund deals")
	case errors.As(err, &userNotFound):
		RespondNotFound(c, "User not found")
	case errors.As(err, &conflict):
		RespondConflict(c, "Wallet was modified concurrently, retry the operation")
	default:
		h.logger.Error("Ledger operation failed", "error", err)
		RespondInternalError(c)
	}
}

// mapWalletToResponse maps a wallet entity to a wallet response DTO
func mapWalletToResponse(w *wallet.Wallet) WalletResponse {
	return WalletResponse{
		UserID:    w.UserID.String(),
		Balance:   w.Balance,
		Currency:  w.Currency,
		UpdatedAt: w.UpdatedAt.Format(time.RFC3339),
	}
}

// mapTransactionToResponse maps a ledger entry to a transaction response DTO
func mapTransactionToResponse(tx *transaction.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		SenderID:    tx.SenderID.String(),
		Status:      string(tx.Status),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.ReceiverID != nil {
		resp.ReceiverID = tx.ReceiverID.String()
	}
	return resp
}
