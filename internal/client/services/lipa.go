package services

import (
	"context"
	"strings"

	"github.com/its-steo/GrandV-sub001/internal/client/api"
	"github.com/its-steo/GrandV-sub001/internal/client/models"
)

// LipaService handles the Lipa Mdogo Mdogo installment program:
// registration, application status, and installment payments.
type LipaService interface {
	Register(ctx context.Context, req models.LipaRegisterRequest) (*models.LipaRegistration, error)
	// Registration returns the user's application, or nil when none exists.
	Registration(ctx context.Context) (*models.LipaRegistration, error)
	InstallmentOrders(ctx context.Context) ([]models.InstallmentOrder, error)
	Pay(ctx context.Context, orderID int64, amount float64) (*models.InstallmentPaymentResult, error)
}

type lipaService struct {
	client api.Client
}

func NewLipaService(client api.Client) LipaService {
	return &lipaService{client: client}
}

func (l *lipaService) Register(ctx context.Context, req models.LipaRegisterRequest) (*models.LipaRegistration, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, &ValidationError{Field: "full_name", Message: "Full name is required"}
	}
	if strings.TrimSpace(req.IDNumber) == "" {
		return nil, &ValidationError{Field: "id_number", Message: "ID number is required"}
	}
	if !phoneRe.MatchString(req.PhoneNumber) {
		return nil, &ValidationError{
			Field:   "phone_number",
			Message: "Phone number must be in international format (e.g., +1234567890)",
		}
	}
	return l.client.LipaRegister(ctx, req)
}

func (l *lipaService) Registration(ctx context.Context) (*models.LipaRegistration, error) {
	return l.client.LipaRegistration(ctx)
}

func (l *lipaService) InstallmentOrders(ctx context.Context) ([]models.InstallmentOrder, error) {
	return l.client.InstallmentOrders(ctx)
}

func (l *lipaService) Pay(ctx context.Context, orderID int64, amount float64) (*models.InstallmentPaymentResult, error) {
	if orderID <= 0 {
		return nil, &ValidationError{Field: "order_id", Message: "Select an order to pay"}
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	return l.client.PayInstallment(ctx, models.InstallmentPaymentRequest{OrderID: orderID, Amount: amount})
}
