package models

// LipaRegisterRequest applies for the Lipa Mdogo Mdogo installment program.
type LipaRegisterRequest struct {
	FullName    string `json:"full_name"`
	IDNumber    string `json:"id_number"`
	PhoneNumber string `json:"phone_number"`
	Occupation  string `json:"occupation,omitempty"`
}

// LipaRegistration is the state of the user's installment-program
// application. Status is one of pending, approved, rejected.
type LipaRegistration struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	IDNumber  string `json:"id_number"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// InstallmentOrder is a purchase being paid off in installments.
type InstallmentOrder struct {
	ID               int64  `json:"id"`
	ProductName      string `json:"product_name"`
	TotalAmount      string `json:"total_amount"`
	AmountPaid       string `json:"amount_paid"`
	RemainingBalance string `json:"remaining_balance"`
	NextPaymentDate  string `json:"next_payment_date,omitempty"`
	Status           string `json:"status"`
}

// InstallmentPaymentRequest pays down an installment order.
type InstallmentPaymentRequest struct {
	OrderID int64   `json:"order_id"`
	Amount  float64 `json:"amount"`
}

// InstallmentPaymentResult acknowledges an installment payment.
type InstallmentPaymentResult struct {
	Message          string `json:"message"`
	RemainingBalance string `json:"remaining_balance,omitempty"`
}
