package models

// Monetary amounts arrive as decimal strings; the client renders them
// verbatim and never does arithmetic on them.

// WalletBalance is the aggregate wallet view.
type WalletBalance struct {
	MainBalance          string        `json:"main_balance"`
	ReferralBalance      string        `json:"referral_balance"`
	DepositBalance       string        `json:"deposit_balance,omitempty"`
	ViewsEarningsBalance string        `json:"views_earnings_balance,omitempty"`
	TotalBalance         string        `json:"total_balance"`
	Transactions         []Transaction `json:"transactions,omitempty"`
}

// Transaction is a single wallet ledger entry.
type Transaction struct {
	ID              int64  `json:"id"`
	TransactionType string `json:"transaction_type"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	BalanceType     string `json:"balance_type"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at,omitempty"`
	ReferenceID     string `json:"reference_id,omitempty"`
}

// DepositRequest starts an M-Pesa STK deposit.
type DepositRequest struct {
	Amount      float64 `json:"amount"`
	PhoneNumber string  `json:"phone_number"`
}

// DepositResult acknowledges a deposit request; the transaction completes
// asynchronously via the payment callback.
type DepositResult struct {
	Message     string `json:"message"`
	ReferenceID string `json:"reference_id,omitempty"`
}

// WithdrawRequest moves funds from a wallet balance to an M-Pesa number.
type WithdrawRequest struct {
	Amount      float64 `json:"amount"`
	MpesaNumber string  `json:"mpesa_number"`
}

// WithdrawResult is the backend acknowledgement of a withdrawal.
type WithdrawResult struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	NewBalance float64 `json:"new_balance,omitempty"`
}
