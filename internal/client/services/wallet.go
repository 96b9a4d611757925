package services

import (
	"context"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// WalletService exposes the user's wallet: balances, M-Pesa deposits and
// withdrawals, and the transaction ledger.
type WalletService interface {
	Balance(ctx context.Context) (*models.WalletBalance, error)
	Deposit(ctx context.Context, amount float64, phoneNumber string) (*models.DepositResult, error)
	WithdrawMain(ctx context.Context, amount float64, mpesaNumber string) (*models.WithdrawResult, error)
	WithdrawReferral(ctx context.Context, amount float64, mpesaNumber string) (*models.WithdrawResult, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
}

type walletService struct {
	client api.Client
}

func NewWalletService(client api.Client) WalletService {
	return &walletService{client: client}
}

func (w *walletService) Balance(ctx context.Context) (*models.WalletBalance, error) {
	return w.client.Wallet(ctx)
}

func (w *walletService) Deposit(ctx context.Context, amount float64, phoneNumber string) (*models.DepositResult, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if !phoneRe.MatchString(phoneNumber) {
		return nil, &ValidationError{
			Field:   "phone_number",
			Message: "Phone number must be in international format (e.g., +1234567890)",
		}
	}
	return w.client.Deposit(ctx, models.DepositRequest{Amount: amount, PhoneNumber: phoneNumber})
}

func (w *walletService) WithdrawMain(ctx context.Context, amount float64, mpesaNumber string) (*models.WithdrawResult, error) {
	if err := validateWithdrawal(amount, mpesaNumber); err != nil {
		return nil, err
	}
	return w.client.WithdrawMain(ctx, models.WithdrawRequest{Amount: amount, MpesaNumber: mpesaNumber})
}

func (w *walletService) WithdrawReferral(ctx context.Context, amount float64, mpesaNumber string) (*models.WithdrawResult, error) {
	if err := validateWithdrawal(amount, mpesaNumber); err != nil {
		return nil, err
	}
	return w.client.WithdrawReferral(ctx, models.WithdrawRequest{Amount: amount, MpesaNumber: mpesaNumber})
}

func (w *walletService) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return w.client.Transactions(ctx)
}

func validateAmount(amount float64) error {
	if amount <= 0 {
		return &ValidationError{Field: "amount", Message: "Amount must be greater than zero"}
	}
	return nil
}

func validateWithdrawal(amount float64, mpesaNumber string) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if !phoneRe.MatchString(mpesaNumber) {
		return &ValidationError{
			Field:   "mpesa_number",
			Message: "M-Pesa number must be in international format (e.g., +1234567890)",
		}
	}
	return nil
}
