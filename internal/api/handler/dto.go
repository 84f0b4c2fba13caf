package handler

// RegisterUserRequest represents a request to register a new user
type RegisterUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=entrepreneur investor"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// WalletResponse represents a wallet in API responses
type WalletResponse struct {
	UserID    string `json:"user_id"`
	Balance   int64  `json:"balance"`
	Currency  string `json:"currency"`
	UpdatedAt string `json:"updated_at"`
}

// DepositRequest represents a deposit into the caller's wallet
type DepositRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description,omitempty"`
}

// WithdrawRequest represents a withdrawal from the caller's wallet
type WithdrawRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description,omitempty"`
}

// TransferRequest represents a transfer to another user resolved by email
type TransferRequest struct {
	SenderID       string `json:"sender_id" binding:"required,uuid"`
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	Amount         int64  `json:"amount" binding:"required,gt=0"`
	Description    string `json:"description,omitempty"`
}

// FundDealRequest represents an investor funding a deal
type FundDealRequest struct {
	InvestorID     string `json:"investor_id" binding:"required,uuid"`
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	Amount         int64  `json:"amount" binding:"required,gt=0"`
	Description    string `json:"description,omitempty"`
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	SenderID    string `json:"sender_id"`
	ReceiverID  string `json:"receiver_id,omitempty"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ProposeMeetingRequest represents a meeting proposal
type ProposeMeetingRequest struct {
	OrganizerID     string `json:"organizer_id" binding:"required,uuid"`
	AttendeeID      string `json:"attendee_id" binding:"required,uuid"`
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description,omitempty"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
}

// RespondMeetingRequest represents the attendee's decision on a pending request
type RespondMeetingRequest struct {
	ResponderID string `json:"responder_id" binding:"required,uuid"`
	Decision    string `json:"decision" binding:"required,oneof=accept decline"`
}

// MeetingResponse represents a meeting in API responses
type MeetingResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	OrganizerID string `json:"organizer_id"`
	AttendeeID  string `json:"attendee_id"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// AddAvailabilityRequest represents a new availability slot
type AddAvailabilityRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	DayOfWeek   int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	IsRecurring bool   `json:"is_recurring"`
}

// AvailabilityResponse represents an availability slot in API responses
type AvailabilityResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsRecurring bool   `json:"is_recurring"`
}

// PaginationParams represents pagination parameters for list endpoints
type PaginationParams struct {
	Page    int `form:"page,default=1" binding:"min=1"`
	PerPage int `form:"per_page,default=10" binding:"min=1,max=100"`
}
